package scandown

import (
	"bytes"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/refs"
)

// tryLinkRefDef recognizes a link reference definition:
// `[label]: destination "title"`, consuming 1 or 2 lines (the destination
// must be on the label's line; an optional title may instead stand alone
// on the following line). On success the
// label is registered in the Reference Table and the lines are consumed
// with no AST node produced.
func (sc *scanner) tryLinkRefDef(lines []line) (int, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	_, indent := stripUpTo3(lines[0].bytes)
	if len(indent) == 0 || indent[0] != '[' {
		return 0, false
	}
	closeIdx := bytes.IndexByte(indent, ']')
	if closeIdx < 1 {
		return 0, false
	}
	label := string(indent[1:closeIdx])
	rest := indent[closeIdx+1:]
	if len(rest) == 0 || rest[0] != ':' {
		return 0, false
	}
	rest = bytes.TrimLeft(rest[1:], " \t")

	dest, rest, ok := scanLinkDestination(rest)
	if !ok {
		return 0, false
	}
	title, hadTitle := scanLinkTitleSameLine(rest)
	end := 1

	if !hadTitle && len(bytes.TrimSpace(rest)) > 0 {
		return 0, false // trailing garbage on the definition line
	}
	if !hadTitle && len(lines) > 1 {
		if t, ok := scanLinkTitleSameLine(bytes.TrimSpace(lines[1].bytes)); ok {
			title = t
			end = 2
		}
	}

	sp := spanOf(lines[0], lines[end-1])
	def := refs.Definition{Destination: dest, Title: title, Span: sp}
	if !sc.refs.DefineLink(label, def) {
		sc.diags.Addf(diag.Info, sp, diag.DuplicateLinkReference,
			"duplicate link reference definition %q ignored", label)
	}
	return end, true
}

// scanLinkDestination parses a link destination: either `<...>` (angle
// bracket form, ending at the first `>`) or a bare run of non-space,
// non-tab bytes with balanced parens.
func scanLinkDestination(b []byte) (dest string, rest []byte, ok bool) {
	b = bytes.TrimLeft(b, " \t")
	if len(b) == 0 {
		return "", b, false
	}
	if b[0] == '<' {
		end := bytes.IndexByte(b[1:], '>')
		if end < 0 {
			return "", b, false
		}
		return string(b[1 : 1+end]), b[1+end+1:], true
	}
	depth := 0
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t':
			goto done
		case '(':
			depth++
		case ')':
			if depth == 0 {
				goto done
			}
			depth--
		}
		i++
	}
done:
	if i == 0 {
		return "", b, false
	}
	return string(b[:i]), b[i:], true
}

// scanLinkTitleSameLine parses an optional `"title"`, `'title'` or
// `(title)` on the remainder of a definition line.
func scanLinkTitleSameLine(b []byte) (title string, ok bool) {
	b = bytes.TrimSpace(b)
	if len(b) < 2 {
		return "", false
	}
	open, closeByte := b[0], byte(0)
	switch open {
	case '"':
		closeByte = '"'
	case '\'':
		closeByte = '\''
	case '(':
		closeByte = ')'
	default:
		return "", false
	}
	if b[len(b)-1] != closeByte {
		return "", false
	}
	return string(b[1 : len(b)-1]), true
}

// tryFootnoteDef recognizes a footnote definition: `[^label]: ` followed
// by the definition's content, which may continue on following lines
// indented at least 4 columns.
func (sc *scanner) tryFootnoteDef(lines []line, depth int) (int, bool) {
	if !sc.opts.Footnotes || len(lines) == 0 {
		return 0, false
	}
	_, indent := stripUpTo3(lines[0].bytes)
	if len(indent) < 4 || indent[0] != '[' || indent[1] != '^' {
		return 0, false
	}
	closeIdx := bytes.IndexByte(indent, ']')
	if closeIdx < 2 {
		return 0, false
	}
	label := string(indent[2:closeIdx])
	rest := indent[closeIdx+1:]
	if len(rest) == 0 || rest[0] != ':' {
		return 0, false
	}
	firstContent := bytes.TrimLeft(rest[1:], " \t")

	body := []line{{bytes: firstContent, offset: lines[0].offset, lineNo: lines[0].lineNo}}
	i := 1
	for i < len(lines) {
		ln := lines[i]
		if isBlank(ln.bytes) {
			j := i
			for j < len(lines) && isBlank(lines[j].bytes) {
				j++
			}
			if j < len(lines) {
				if w, _ := indentWidth(lines[j].bytes); w >= 4 {
					body = append(body, blankLines(lines[i:j])...)
					i = j
					continue
				}
			}
			break
		}
		w, _ := indentWidth(ln.bytes)
		if w < 4 {
			break
		}
		_, tail := trimIndent(ln.bytes, 0, 4)
		body = append(body, line{bytes: tail, offset: ln.offset, lineNo: ln.lineNo})
		i++
	}

	node := ast.New(ast.FootnoteDefinition)
	node.Label = refs.Normalize(label)
	for _, c := range sc.parseSequence(body, depth+1) {
		node.AppendChild(c)
	}
	node.Span = spanOf(lines[0], lines[i-1])
	if !sc.refs.DefineFootnote(label, node, node.Span) {
		sc.diags.Addf(diag.Info, node.Span, diag.DuplicateLinkReference,
			"duplicate footnote definition %q ignored", label)
	}
	return i, true
}
