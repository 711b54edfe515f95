package inline

import (
	"strings"

	"github.com/jcorbin/marco/ast"
)

// bracketMarker tracks one open '[' or '![' on the bracket stack, per the
// CommonMark link/image pairing algorithm.
type bracketMarker struct {
	node   *ast.Node // the literal opener Text node ("[" or "![")
	image  bool
	active bool
}

// tryBracket pushes a '[' or '![' opener marker. A '[' immediately
// followed by '^' is instead a footnote reference when footnotes are
// enabled, handled whole by tryFootnoteReference.
func (p *parser) tryBracket(parent *ast.Node) bool {
	if p.text[p.pos] == '!' {
		if p.pos+1 >= len(p.text) || p.text[p.pos+1] != '[' {
			return false
		}
		p.pos += 2
		node := p.appendText(parent, "![")
		p.brackets = append(p.brackets, &bracketMarker{node: node, image: true, active: true})
		return true
	}
	if p.o.Footnotes && p.pos+1 < len(p.text) && p.text[p.pos+1] == '^' {
		return p.tryFootnoteReference(parent)
	}
	p.pos++
	node := p.appendText(parent, "[")
	p.brackets = append(p.brackets, &bracketMarker{node: node, active: true})
	return true
}

// tryCloseBracket handles a ']', searching backwards for the nearest
// active bracket opener and attempting to resolve a link or image.
func (p *parser) tryCloseBracket(parent *ast.Node) bool {
	idx := -1
	for i := len(p.brackets) - 1; i >= 0; i-- {
		if p.brackets[i].active {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	b := p.brackets[idx]

	closeBracketPos := p.pos
	afterBracket := p.text[closeBracketPos+1:]

	dest, title, refLabel, shortcut, consumed, ok := scanLinkTail(afterBracket)
	if !ok {
		b.active = false
		p.pos++
		p.appendText(parent, "]")
		return true
	}
	if shortcut {
		if refLabel == "" {
			refLabel = linkTextContent(b.node)
		}
		def, found := p.refs.LookupLink(refLabel)
		if !found {
			b.active = false
			p.pos++
			p.appendText(parent, "]")
			return true
		}
		dest, title = def.Destination, def.Title
	}

	n := ast.New(ast.Link)
	if b.image {
		n.Kind = ast.Image
	}
	n.Destination = dest
	n.Title = title
	b.node.InsertBefore(n)
	for c := b.node.Next; c != nil; {
		next := c.Next
		n.AppendChild(c)
		c = next
	}
	b.node.Unlink()
	n.Span = p.spanFor(b.node.Span.Start.Offset, closeBracketPos+1+consumed)

	if n.Kind != ast.Image {
		for i := 0; i < idx; i++ {
			if !p.brackets[i].image {
				p.brackets[i].active = false
			}
		}
	}
	b.active = false
	p.pos = closeBracketPos + 1 + consumed
	return true
}

// linkTextContent concatenates the plain text of every node following
// opener up to its current last sibling, for shortcut/collapsed reference
// resolution (`[text]`, `[text][]`).
func linkTextContent(opener *ast.Node) string {
	var sb strings.Builder
	for c := opener.Next; c != nil; c = c.Next {
		sb.WriteString(ast.TextContent(c))
	}
	return sb.String()
}

// scanLinkTail parses what follows a closing ']': an inline `(dest
// "title")` destination, a full reference `[label]`, or a collapsed/
// shortcut reference (`[]` or nothing at all, both needing the link's own
// text as the label, signaled by shortcut=true and refLabel=="").
// Returns the number of bytes of rest consumed.
func scanLinkTail(rest string) (dest, title, refLabel string, shortcut bool, consumed int, ok bool) {
	if strings.HasPrefix(rest, "(") {
		d, t, n, ok2 := scanInlineDestTitle(rest)
		if ok2 {
			return d, t, "", false, n, true
		}
	}
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", "", "", false, 0, false
		}
		label := rest[1:end]
		return "", "", label, true, end + 1, true
	}
	return "", "", "", true, 0, true
}

// scanInlineDestTitle parses "(dest title)" immediately after ']'.
func scanInlineDestTitle(rest string) (dest, title string, consumed int, ok bool) {
	i := 1 // skip '('
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n') {
		i++
	}
	d, tail, destOK := scanDestination(rest[i:])
	if !destOK {
		return "", "", 0, false
	}
	i += len(rest[i:]) - len(tail)
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n') {
		i++
	}
	if i < len(rest) && rest[i] != ')' {
		t, tlen, titleOK := scanTitle(rest[i:])
		if !titleOK {
			return "", "", 0, false
		}
		title = t
		i += tlen
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n') {
			i++
		}
	}
	if i >= len(rest) || rest[i] != ')' {
		return "", "", 0, false
	}
	return d, title, i + 1, true
}

func scanDestination(s string) (dest string, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, true // empty destination allowed
	}
	if s[0] == '<' {
		end := strings.IndexAny(s[1:], "<>\n")
		if end < 0 || s[1+end] != '>' {
			return "", s, false
		}
		return s[1 : 1+end], s[1+end+1:], true
	}
	depth := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n':
			return s[:i], s[i:], true
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return s[:i], s[i:], true
			}
			depth--
		case '\\':
			i++
		}
		i++
	}
	return s[:i], s[i:], true
}

func scanTitle(s string) (title string, consumed int, ok bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	var closeCh byte
	switch s[0] {
	case '"':
		closeCh = '"'
	case '\'':
		closeCh = '\''
	case '(':
		closeCh = ')'
	default:
		return "", 0, false
	}
	i := 1
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == closeCh {
			return s[1:i], i + 1, true
		}
		i++
	}
	return "", 0, false
}
