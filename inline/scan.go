package inline

import (
	"strings"

	"github.com/jcorbin/marco/ast"
)

// escapable is the CommonMark set of ASCII punctuation that may be
// backslash-escaped.
const escapable = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// tryEscape consumes a backslash escape of a punctuation character,
// emitting it as literal text. A backslash immediately before a newline is
// left for tryLineBreak (a hard break) instead.
func (p *parser) tryEscape(parent *ast.Node) bool {
	if p.pos+1 >= len(p.text) {
		return false
	}
	next := p.text[p.pos+1]
	if next == '\n' {
		return false
	}
	if strings.IndexByte(escapable, next) < 0 {
		return false
	}
	p.pos += 2
	p.appendText(parent, string(next))
	return true
}

// tryEntity consumes a named or numeric HTML character reference via the
// standard library's entity table.
func (p *parser) tryEntity(parent *ast.Node) bool {
	rest := p.text[p.pos:]
	semi := strings.IndexByte(rest, ';')
	if semi < 0 || semi > 32 {
		return false
	}
	candidate := rest[:semi+1]
	decoded := decodeEntity(candidate)
	if decoded == "" {
		return false
	}
	p.pos += len(candidate)
	p.appendText(parent, decoded)
	return true
}

// tryCodeSpan consumes a backtick-delimited code span: a run of N
// backticks opens, the shortest following run of exactly N backticks
// closes. One leading and trailing space is trimmed when the content has
// a space on both ends and is not all spaces.
func (p *parser) tryCodeSpan(parent *ast.Node) bool {
	start := p.pos
	openLen := runLength(p.text, p.pos, '`')
	contentStart := p.pos + openLen
	i := contentStart
	for i < len(p.text) {
		if p.text[i] == '`' {
			closeLen := runLength(p.text, i, '`')
			if closeLen == openLen {
				content := p.text[contentStart:i]
				n := ast.New(ast.Code)
				n.Literal = trimCodeSpanSpaces(content)
				n.Span = p.spanFor(start, i+closeLen)
				parent.AppendChild(n)
				p.pos = i + closeLen
				return true
			}
			i += closeLen
			continue
		}
		i++
	}
	return false // unmatched: falls through to literal backtick text
}

func trimCodeSpanSpaces(s string) string {
	if len(s) < 2 || s[0] != ' ' || s[len(s)-1] != ' ' {
		return s
	}
	if strings.TrimSpace(s) == "" {
		return s
	}
	return s[1 : len(s)-1]
}

func runLength(s string, from int, c byte) int {
	i := from
	for i < len(s) && s[i] == c {
		i++
	}
	return i - from
}

// tryLineBreak recognizes a hard line break: two or more trailing spaces,
// or a backslash, immediately before a newline.
func (p *parser) tryLineBreak(parent *ast.Node) bool {
	if p.text[p.pos] == '\\' {
		if p.pos+1 < len(p.text) && p.text[p.pos+1] == '\n' {
			n := ast.New(ast.HardBreak)
			n.Span = p.spanFor(p.pos, p.pos+2)
			parent.AppendChild(n)
			p.pos += 2
			return true
		}
		return false
	}
	n := runLength(p.text, p.pos, ' ')
	if n < 2 {
		return false
	}
	if p.pos+n >= len(p.text) || p.text[p.pos+n] != '\n' {
		return false
	}
	node := ast.New(ast.HardBreak)
	node.Span = p.spanFor(p.pos, p.pos+n+1)
	parent.AppendChild(node)
	p.pos += n + 1
	return true
}

// trySoftBreak consumes a bare newline as a SoftBreak.
func (p *parser) trySoftBreak(parent *ast.Node) bool {
	n := ast.New(ast.SoftBreak)
	n.Span = p.spanFor(p.pos, p.pos+1)
	parent.AppendChild(n)
	p.pos++
	return true
}

// tryTaskMarker consumes a leading `[ ]`/`[x]` at the very start of a
// paragraph's text, emitting a standalone TaskMarker inline (distinct from
// a list item's own item.Task, which the block scanner already strips
// from the leaf's literal before this package ever sees it).
func (p *parser) tryTaskMarker(parent *ast.Node) bool {
	if p.pos != 0 {
		return false
	}
	rest := p.text
	if len(rest) < 4 || rest[0] != '[' || rest[2] != ']' || rest[3] != ' ' {
		return false
	}
	var state ast.TaskState
	switch rest[1] {
	case ' ':
		state = ast.Unchecked
	case 'x', 'X':
		state = ast.Checked
	default:
		return false
	}
	n := ast.New(ast.TaskMarker)
	n.Task = state
	n.Span = p.spanFor(p.pos, p.pos+4)
	parent.AppendChild(n)
	p.pos += 4
	return true
}

// tryMathInline consumes a `$...$` inline math span: the next `$` closes
// it, and the content must be non-empty and contain no newline.
func (p *parser) tryMathInline(parent *ast.Node) bool {
	start := p.pos
	end := strings.IndexByte(p.text[p.pos+1:], '$')
	if end < 0 {
		return false
	}
	end += p.pos + 1
	content := p.text[p.pos+1 : end]
	if content == "" || strings.ContainsRune(content, '\n') {
		return false
	}
	n := ast.New(ast.MathInline)
	n.Literal = content
	n.Span = p.spanFor(start, end+1)
	parent.AppendChild(n)
	p.pos = end + 1
	return true
}

// tryRun consumes a delimiter-wrapped span for markers with no flanking
// ambiguity (e.g. highlight `==...==`): the first following occurrence of
// width markers closes the span, and the non-empty content between
// becomes kind's children via a nested scan.
func (p *parser) tryRun(parent *ast.Node, mark byte, width int, kind ast.Kind) bool {
	start := p.pos
	if runLength(p.text, p.pos, mark) < width {
		return false
	}
	contentStart := p.pos + width
	closeAt := strings.Index(p.text[contentStart:], strings.Repeat(string(mark), width))
	if closeAt < 0 {
		return false
	}
	closeAt += contentStart
	if closeAt == contentStart {
		return false // empty span: treat markers as literal
	}
	n := ast.New(kind)
	n.Span = p.spanFor(start, closeAt+width)
	sub := &parser{text: p.text[contentStart:closeAt], o: p.o, refs: p.refs, diags: p.diags, line: p.line, col: p.col + contentStart}
	sub.scan(n)
	sub.processEmphasis(n, 0, len(sub.delims))
	parent.AppendChild(n)
	p.pos = closeAt + width
	return true
}

// tryCaret dispatches '^' to either inline footnote (`^[...]`, when
// footnotes are enabled) or superscript (`^...^`).
func (p *parser) tryCaret(parent *ast.Node) bool {
	if p.o.Footnotes && p.pos+1 < len(p.text) && p.text[p.pos+1] == '[' {
		return p.tryInlineFootnote(parent)
	}
	if !p.o.SuperscriptSubscript {
		return false
	}
	return p.trySingleMarkRun(parent, '^', ast.Superscript)
}

// tryTilde dispatches '~' to strikethrough (`~~...~~`, GFM) or subscript
// (single `~...~`).
func (p *parser) tryTilde(parent *ast.Node) bool {
	if p.o.GFMStrikethrough && runLength(p.text, p.pos, '~') >= 2 {
		return p.tryRun(parent, '~', 2, ast.Strikethrough)
	}
	if !p.o.SuperscriptSubscript {
		return false
	}
	return p.trySingleMarkRun(parent, '~', ast.Subscript)
}

// trySingleMarkRun consumes a single-character-delimited span with no
// interior whitespace (superscript/subscript's informal grammar): the
// marker, a run of non-space non-marker bytes, then the marker again.
func (p *parser) trySingleMarkRun(parent *ast.Node, mark byte, kind ast.Kind) bool {
	start := p.pos
	i := p.pos + 1
	for i < len(p.text) && p.text[i] != mark && p.text[i] != ' ' && p.text[i] != '\n' {
		i++
	}
	if i == p.pos+1 || i >= len(p.text) || p.text[i] != mark {
		return false
	}
	n := ast.New(kind)
	n.Span = p.spanFor(start, i+1)
	txt := ast.New(ast.Text)
	txt.Literal = p.text[p.pos+1 : i]
	txt.Span = p.spanFor(p.pos+1, i)
	n.AppendChild(txt)
	parent.AppendChild(n)
	p.pos = i + 1
	return true
}
