package inline

import (
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/refs"
)

// tryFootnoteReference consumes `[^label]`, resolving label against the
// Reference Table's footnote definitions and assigning it its
// first-reference ordinal. An unresolved label is left as literal text,
// with an UnmatchedFootnoteRef diagnostic.
func (p *parser) tryFootnoteReference(parent *ast.Node) bool {
	start := p.pos
	rest := p.text[p.pos+2:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return false
	}
	label := rest[:end]
	if label == "" {
		return false
	}
	number, ok := p.refs.ReferenceFootnote(label)
	if !ok {
		p.diags.Addf(diag.Info, p.spanFor(start, start+2+end+1), diag.UnmatchedFootnoteRef,
			"footnote reference %q has no matching definition", label)
		return false
	}
	n := ast.New(ast.FootnoteReference)
	n.Label = refs.Normalize(label)
	n.Number = number
	n.Span = p.spanFor(start, start+2+end+1)
	parent.AppendChild(n)
	p.pos = start + 2 + end + 1
	return true
}

// tryInlineFootnote consumes `^[...]`, scanning its bracketed content
// (tracking nesting depth so an inner link's brackets don't terminate it
// early) as a nested inline scan, and registers it under a synthesized
// anonymous label via DefineInlineFootnote.
func (p *parser) tryInlineFootnote(parent *ast.Node) bool {
	start := p.pos
	i := p.pos + 2
	depth := 1
	closed := false
	for i < len(p.text) {
		switch p.text[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				closed = true
			}
		}
		if closed {
			break
		}
		i++
	}
	if !closed {
		return false
	}

	content := p.text[start+2 : i]
	n := ast.New(ast.InlineFootnote)
	sub := &parser{text: content, o: p.o, refs: p.refs, diags: p.diags, line: p.line, col: p.col + start + 2}
	sub.scan(n)
	sub.processEmphasis(n, 0, len(sub.delims))

	span := p.spanFor(start, i+1)
	label, number := p.refs.DefineInlineFootnote(n, span)
	n.Label = label
	n.Number = number
	n.Span = span
	parent.AppendChild(n)
	p.pos = i + 1
	return true
}
