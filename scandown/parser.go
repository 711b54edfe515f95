package scandown

import (
	"unicode/utf8"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/opts"
	"github.com/jcorbin/marco/refs"
)

// scanner carries the state shared by every recursive descent into a
// nested container: the frozen-while-scanning option set, the Reference
// Table being built, and the Diagnostics Collector.
type scanner struct {
	opts  opts.Options
	refs  *refs.Table
	diags *diag.Collector
}

// Parse runs the block scanner over source, returning the provisional
// Document (leaf blocks still carry raw, not-yet-inline-parsed text in
// their Literal field) and the Reference Table built alongside it.
func Parse(source string, o opts.Options) (*ast.Node, *refs.Table) {
	sc := &scanner{opts: o, refs: refs.NewTable(), diags: &diag.Collector{}}
	lines := splitLines(source, 0)
	doc := ast.New(ast.Document)
	children := sc.parseSequence(lines, 0)
	for _, c := range children {
		doc.AppendChild(c)
	}
	doc.Span = documentSpan(lines)
	return doc, sc.refs
}

// Scanner runs the block scanner and keeps the Reference Table and
// Diagnostics Collector of its most recent Parse call for inspection.
// Package-level Parse is stateless between calls and discards its
// diagnostics; use NewScanner for access to them.
type Scanner struct {
	sc *scanner
}

// NewScanner returns a Scanner whose Parse method also exposes the
// Diagnostics Collector it populated.
func NewScanner(o opts.Options) *Scanner {
	return &Scanner{sc: &scanner{opts: o, refs: refs.NewTable(), diags: &diag.Collector{}}}
}

// Parse runs the block scanner, as the package-level function does, but
// retains refs/diagnostics on the receiver for later inspection.
func (s *Scanner) Parse(source string) *ast.Node {
	s.sc.refs = refs.NewTable()
	s.sc.diags = &diag.Collector{}
	lines := splitLines(source, 0)
	doc := ast.New(ast.Document)
	for _, c := range s.sc.parseSequence(lines, 0) {
		doc.AppendChild(c)
	}
	doc.Span = documentSpan(lines)
	return doc
}

// Refs returns the Reference Table built by the most recent Parse call.
func (s *Scanner) Refs() *refs.Table { return s.sc.refs }

// Diagnostics returns the diagnostics recorded by the most recent Parse call.
func (s *Scanner) Diagnostics() []diag.Diagnostic { return s.sc.diags.Diagnostics() }

func documentSpan(lines []line) ast.Span {
	if len(lines) == 0 {
		return ast.Span{}
	}
	return ast.Span{
		Start: position(lines[0], 0),
		End:   position(lines[len(lines)-1], len(lines[len(lines)-1].bytes)),
	}
}

func position(ln line, byteCol int) ast.Position {
	if byteCol > len(ln.bytes) {
		byteCol = len(ln.bytes)
	}
	return ast.Position{
		Offset: ln.offset + byteCol,
		Line:   ln.lineNo,
		Column: utf8.RuneCount(ln.bytes[:byteCol]) + 1,
	}
}

func spanOf(first, last line) ast.Span {
	return ast.Span{Start: position(first, 0), End: position(last, len(last.bytes))}
}

func spanOfOne(ln line) ast.Span { return spanOf(ln, ln) }

// parseSequence is the main block-open loop: it walks lines, trying each
// block start in the precedence order fixed by §4.1, and recurses into
// nested containers by re-deriving a stripped line sequence rather than a
// flattened string, so span bookkeeping stays anchored to original source
// lines throughout.
func (sc *scanner) parseSequence(lines []line, depth int) []*ast.Node {
	var out []*ast.Node
	i := 0
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			i++
			continue
		}

		if depth > 0 && sc.opts.MaxNestingDepth > 0 && depth >= sc.opts.MaxNestingDepth {
			sc.diags.Addf(diag.Info, spanOfOne(ln), diag.NestingDepthExceeded,
				"container nesting depth %d exceeds limit %d; treating as paragraph", depth, sc.opts.MaxNestingDepth)
			node, n := sc.scanParagraph(lines[i:])
			out = append(out, node)
			i += n
			continue
		}

		if n := tryThematicBreak(ln); n {
			out = append(out, &ast.Node{Kind: ast.ThematicBreak, Span: spanOfOne(ln)})
			i++
			continue
		}

		if node, ok := tryATXHeading(ln, sc.opts); ok {
			out = append(out, node)
			i++
			continue
		}

		if node, n, ok := sc.tryFencedCode(lines[i:]); ok {
			out = append(out, node)
			i += n
			continue
		}

		if sc.opts.Math {
			if node, n, ok := sc.tryBlockMath(lines[i:]); ok {
				out = append(out, node)
				i += n
				continue
			}
		}

		if sc.opts.Admonitions || sc.opts.TabBlocks || sc.opts.Slideshows {
			if node, n, ok := sc.tryFencedExtension(lines[i:], depth); ok {
				out = append(out, node)
				i += n
				continue
			}
		}

		if node, n, ok := tryHTMLBlock(lines[i:]); ok {
			out = append(out, node)
			i += n
			continue
		}

		if node, n, ok := sc.tryBlockQuote(lines[i:], depth); ok {
			out = append(out, node)
			i += n
			continue
		}

		if node, n, ok := sc.tryList(lines[i:], depth); ok {
			out = append(out, node)
			i += n
			continue
		}

		if n, ok := sc.tryFootnoteDef(lines[i:], depth); ok {
			i += n
			continue
		}

		if n, ok := sc.tryLinkRefDef(lines[i:]); ok {
			i += n
			continue
		}

		if sc.opts.GFMTables {
			if node, n, ok := sc.tryTable(lines[i:]); ok {
				out = append(out, node)
				i += n
				continue
			}
		}

		if n, ok := tryIndentedCode(lines[i:]); ok {
			out = append(out, indentedCodeNode(lines[i:i+n]))
			i += n
			continue
		}

		node, n := sc.scanParagraph(lines[i:])
		out = append(out, node)
		i += n
	}
	return out
}

func tryThematicBreak(ln line) bool {
	_, indent := stripUpTo3(ln.bytes)
	_, _, ok := ruler(indent, '-', '_', '*')
	if !ok {
		return false
	}
	// a '-' run could instead be a setext underline or list marker; callers
	// try those first only inside paragraph continuation, so a bare ruler
	// at block-open position is unambiguous here.
	return true
}

// stripUpTo3 trims at most 3 leading indent columns (the CommonMark
// allowance before content counts as an indented code block) and returns
// how many columns were trimmed alongside the remaining tail.
func stripUpTo3(b []byte) (n int, tail []byte) {
	return trimIndent(b, 0, 3)
}
