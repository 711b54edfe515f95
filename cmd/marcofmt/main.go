// Command marcofmt renders a Markdown file (or stdin) to HTML.
package main

import (
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/google/renameio"
	"github.com/jcorbin/marco/internal/socutil"
	"github.com/jcorbin/marco/markdown"
)

func main() {
	var (
		o           = markdown.Default()
		inPath      string
		outPath     string
		unsafeHTML  bool
		noTables    bool
		noFootnotes bool
		tabWidth    int
	)

	flag.StringVar(&inPath, "i", "", "input file (default stdin)")
	flag.StringVar(&outPath, "o", "", "output file (default stdout)")
	flag.BoolVar(&unsafeHTML, "unsafe-html", false, "pass raw HTML blocks/inlines through verbatim")
	flag.BoolVar(&noTables, "no-tables", false, "disable GFM tables")
	flag.BoolVar(&noFootnotes, "no-footnotes", false, "disable footnotes")
	flag.IntVar(&tabWidth, "tab-width", o.TabWidth, "tab-stop width stored in Options.TabWidth (block scanning always uses 4)")
	flag.Parse()

	o.UnsafeHTML = unsafeHTML
	o.GFMTables = !noTables
	o.Footnotes = !noFootnotes
	o.TabWidth = tabWidth

	source, err := readInput(inPath)
	if err != nil {
		log.Fatal(err)
	}

	html, diags := markdown.ParseToHTML(string(source), o)
	for _, d := range diags {
		log.Printf("%v", d)
	}

	if err := writeOutput(outPath, html); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func writeOutput(path, html string) (rerr error) {
	if path == "" {
		w := &socutil.ErrWriter{Writer: os.Stdout}
		io.WriteString(w, html)
		return w.Err
	}

	pf, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer func() {
		if rerr == nil {
			rerr = pf.CloseAtomicallyReplace()
		}
		pf.Cleanup()
	}()

	_, err = io.WriteString(pf, html)
	return err
}
