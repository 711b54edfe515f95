// Package markdown is the engine's external interface (§6): parse source
// to a Document AST, render a Document to HTML, or do both in one call.
// It owns the one piece of wiring the lower packages deliberately don't:
// running the inline parser over every leaf's raw text once the block
// scanner (and the Reference Table it builds) has finished with the
// whole document.
package markdown

import (
	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/htmlrender"
	"github.com/jcorbin/marco/inline"
	"github.com/jcorbin/marco/opts"
	"github.com/jcorbin/marco/refs"
	"github.com/jcorbin/marco/scandown"
)

// Options is the engine's full configuration, re-exported from opts so
// callers of this package never need to import it directly.
type Options = opts.Options

// Default returns the documented all-extensions-on baseline.
func Default() Options { return opts.Default() }

// Parse runs the block scanner over source, then the inline parser over
// every leaf's raw text against the Reference Table, returning the
// finished Document and the diagnostics of both phases, block-scan ones
// first.
func Parse(source string, o Options) (*ast.Node, []diag.Diagnostic) {
	s := scandown.NewScanner(o)
	doc := s.Parse(source)
	diags := &diag.Collector{}
	resolveInlines(doc, s.Refs(), o, diags)
	return doc, append(s.Diagnostics(), diags.Diagnostics()...)
}

// resolveInlines walks every block node produced by the scanner and, for
// the leaf kinds that still carry raw text in Literal (Heading,
// Paragraph, TableCell, and a footnote/admonition's own leaf children
// reached through normal recursion), replaces that text with parsed
// inline children.
func resolveInlines(n *ast.Node, rt *refs.Table, o Options, diags *diag.Collector) {
	switch n.Kind {
	case ast.Heading, ast.Paragraph, ast.TableCell:
		text := n.Literal
		n.Literal = ""
		scratch := inline.Parse(text, n.Span.Start.Line, rt, o, diags, n.Kind)
		for c := scratch.FirstChild; c != nil; {
			next := c.Next
			n.AppendChild(c)
			c = next
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.Next {
		resolveInlines(c, rt, o, diags)
	}
}

// RenderHTML renders doc per §4.4.
func RenderHTML(doc *ast.Node, o Options) string {
	return htmlrender.Render(doc, o)
}

// ParseToHTML is the Parse+RenderHTML convenience entry point.
func ParseToHTML(source string, o Options) (string, []diag.Diagnostic) {
	doc, diags := Parse(source, o)
	return RenderHTML(doc, o), diags
}
