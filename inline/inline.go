// Package inline implements the combinator-style recursive-descent scan
// over a leaf block's raw text, plus the delimiter-stack post-processing
// pass that pairs up emphasis/strong runs and resolves link/image
// brackets against the Reference Table built by the block scanner.
package inline

import (
	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/opts"
	"github.com/jcorbin/marco/refs"
)

// parser holds the state threaded through one leaf's inline scan: the
// source text, the frozen Reference Table, options, and the open
// delimiter/bracket stacks consumed by the post-scan passes.
type parser struct {
	text     string
	pos      int
	o        opts.Options
	refs     *refs.Table
	diags    *diag.Collector
	line     int // source line of text[0], for span bookkeeping
	col      int // source column of text[0]
	leafKind ast.Kind

	delims   []*delimRun
	brackets []*bracketMarker
}

// Parse scans text (a single leaf block's raw content, spanning lineNo at
// column 1) into a sequence of inline nodes appended to the returned
// container's children. leafKind is the block kind text came from
// (Heading, Paragraph or TableCell); it gates extensions, such as the
// inline checkbox shorthand, specified to apply only within a paragraph.
// Pass the container's own children after the call.
func Parse(text string, lineNo int, rt *refs.Table, o opts.Options, diags *diag.Collector, leafKind ast.Kind) *ast.Node {
	p := &parser{text: text, o: o, refs: rt, diags: diags, line: lineNo, col: 1, leafKind: leafKind}
	container := ast.New(ast.Paragraph) // scratch parent; caller reparents children
	p.scan(container)
	p.processEmphasis(container, 0, len(p.delims))
	return container
}

// scan performs the left-to-right single pass described by §4.2,
// appending produced nodes to parent and recording delimiter/bracket
// markers for post-processing.
func (p *parser) scan(parent *ast.Node) {
	for p.pos < len(p.text) {
		start := p.pos
		c := p.text[p.pos]

		switch {
		case c == '\\' && p.tryEscape(parent):
		case c == '&' && p.tryEntity(parent):
		case c == '`' && p.tryCodeSpan(parent):
		case c == '<' && p.tryAutolinkOrRawHTML(parent):
		case (c == ' ' || c == '\\') && p.tryLineBreak(parent):
		case c == '\n' && p.trySoftBreak(parent):
		case c == '[' && p.o.TaskLists && p.leafKind == ast.Paragraph && p.tryTaskMarker(parent):
		case c == '$' && p.o.Math && p.tryMathInline(parent):
		case c == '=' && p.o.HighlightMark && p.tryRun(parent, '=', 2, ast.Highlight):
		case c == '^' && (p.o.Footnotes || p.o.SuperscriptSubscript) && p.tryCaret(parent):
		case c == '~' && p.tryTilde(parent):
		case (c == '[' || c == '!') && p.tryBracket(parent):
		case c == ']' && p.tryCloseBracket(parent):
		case (c == '*' || c == '_') && p.tryEmphasisDelim(parent):
		case c == ':' && p.o.EmojiShortcodes && p.tryEmojiShortcode(parent):
		case c == '@' && p.o.UserMentions && p.tryMention(parent):
		case p.o.GFMAutolinkLiterals && p.tryAutolinkLiteral(parent):
		default:
			p.advanceText(parent)
		}

		if p.pos == start {
			// no recognizer consumed anything (shouldn't happen outside
			// advanceText, which always makes progress); force progress.
			p.advanceText(parent)
		}
	}
}

// appendText appends a Text node with literal s, spanning [from,from+len(s)).
func (p *parser) appendText(parent *ast.Node, s string) *ast.Node {
	n := ast.New(ast.Text)
	n.Literal = s
	n.Span = p.spanFor(p.pos-len(s), p.pos)
	parent.AppendChild(n)
	return n
}

// isOpenMarker reports whether n backs an unprocessed delimiter or bracket
// marker still on its respective stack. advanceText must not coalesce
// plain text into such a node: processEmphasis and tryCloseBracket later
// identify these runs by node identity and slice their Literal by marker
// length, which a silent merge would corrupt (the marker's own characters
// would no longer occupy the positions those passes expect).
func (p *parser) isOpenMarker(n *ast.Node) bool {
	if k := len(p.delims); k > 0 && p.delims[k-1].node == n {
		return true
	}
	if k := len(p.brackets); k > 0 && p.brackets[k-1].node == n {
		return true
	}
	return false
}

// spanFor computes a Span for the byte range [from,to) of p.text, assuming
// it contains no newline (true for every single-token span this package
// produces; multi-line spans are assembled by the block scanner instead).
func (p *parser) spanFor(from, to int) ast.Span {
	return ast.Span{
		Start: ast.Position{Offset: from, Line: p.line, Column: p.col + from},
		End:   ast.Position{Offset: to, Line: p.line, Column: p.col + to},
	}
}

// advanceText consumes one rune of plain text, coalescing into the
// previous Text sibling when possible to avoid a node per rune.
func (p *parser) advanceText(parent *ast.Node) {
	start := p.pos
	p.pos++
	for p.pos < len(p.text) && !isSpecial(p.text[p.pos]) {
		p.pos++
	}
	s := p.text[start:p.pos]
	if last := parent.LastChild; last != nil && last.Kind == ast.Text && !p.isOpenMarker(last) {
		last.Literal += s
		last.Span.End = p.spanFor(p.pos-len(s), p.pos).End
		return
	}
	p.appendText(parent, s)
}

// isSpecial reports whether b can start a non-text token, so advanceText
// knows where to stop a run of plain characters.
func isSpecial(b byte) bool {
	switch b {
	case '\\', '&', '`', '<', '\n', '$', '=', '^', '~', '[', '!', ']', '*', '_', ':', '@':
		return true
	default:
		return false
	}
}
