package scandown

import (
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/opts"
)

// scanParagraph accumulates a run of non-blank lines into a Paragraph,
// stopping at a blank line or a line that interrupts paragraph
// continuation (§4.1's leaf-accumulation rule), then checks whether the
// line immediately following is a setext underline that promotes the
// accumulated text to a Heading.
func (sc *scanner) scanParagraph(lines []line) (*ast.Node, int) {
	i := 1
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			break
		}
		if level, ok := setextLevel(ln); ok {
			_ = level
			break
		}
		if interruptsParagraph(ln, sc.opts) {
			break
		}
		i++
	}

	if i < len(lines) {
		if level, ok := setextLevel(lines[i]); ok {
			n := ast.New(ast.Heading)
			n.Level = level
			n.Literal = joinParagraphText(lines[:i])
			n.Span = spanOf(lines[0], lines[i])
			return n, i + 1
		}
	}

	n := ast.New(ast.Paragraph)
	n.Literal = joinParagraphText(lines[:i])
	n.Span = spanOf(lines[0], lines[i-1])
	return n, i
}

func joinParagraphText(lines []line) string {
	var sb strings.Builder
	for i, ln := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(ln.bytes)
	}
	return sb.String()
}

// interruptsParagraph reports whether ln opens a block that is allowed to
// interrupt an in-progress paragraph, per the precedence and restrictions
// named in §4.1 (list items require a non-empty first line, and ordered
// lists additionally require start == 1).
func interruptsParagraph(ln line, o opts.Options) bool {
	if tryThematicBreak(ln) {
		return true
	}
	if _, ok := tryATXHeading(ln, o); ok {
		return true
	}
	_, indent := stripUpTo3(ln.bytes)
	if mark, _, _ := fence(indent, 3, '`', '~'); mark != 0 {
		return true
	}
	if _, _, ok := quoteMarker(indent); ok {
		return true
	}
	if delim, _, tail, ok := listMarker(indent); ok {
		if len(tail) == 0 {
			return false // empty first item does not interrupt
		}
		if (delim == '.' || delim == ')') && ordinalValue(ln.bytes) != 1 {
			return false
		}
		return true
	}
	first := indent
	if len(first) > 0 && first[0] == '<' {
		if tag, _ := htmlTagName(first); tag != "" && htmlBlockTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}
