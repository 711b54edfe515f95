// Command marcoscan dumps the AST produced by the block scanner and
// inline parser, one indented line per node, for debugging the engine
// itself.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/markdown"
	"github.com/jcorbin/marco/scandown"
)

func main() {
	var (
		o         = markdown.Default()
		blockOnly bool
	)

	flag.BoolVar(&blockOnly, "blocks", false, "stop after block scanning, before inline resolution")
	flag.Parse()

	source, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	var doc *ast.Node
	if blockOnly {
		doc, _ = scandown.Parse(string(source), o)
	} else {
		d, diags := markdown.Parse(string(source), o)
		doc = d
		for _, diag := range diags {
			fmt.Fprintf(os.Stderr, "# %v\n", diag)
		}
	}

	depth := 0
	doc.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			depth--
			return ast.GoToNext
		}
		fmt.Printf("%s%+v\n", strings.Repeat("  ", depth), n)
		depth++
		return ast.GoToNext
	})
}
