package inline

import (
	"strings"

	"github.com/jcorbin/marco/ast"
)

// tryAutolinkOrRawHTML dispatches a leading '<' to a CommonMark autolink
// (`<scheme:...>` or `<email>`), or else to a raw HTML span tag.
func (p *parser) tryAutolinkOrRawHTML(parent *ast.Node) bool {
	if p.tryAutolink(parent) {
		return true
	}
	return p.tryRawHTML(parent)
}

// tryAutolink consumes `<scheme:destination>` or `<local@domain>`.
func (p *parser) tryAutolink(parent *ast.Node) bool {
	closeIdx := strings.IndexByte(p.text[p.pos:], '>')
	if closeIdx < 0 {
		return false
	}
	inner := p.text[p.pos+1 : p.pos+closeIdx]
	if inner == "" || strings.ContainsAny(inner, " \t\n<") {
		return false
	}

	var kind ast.AutolinkKind
	var dest string
	if scheme, ok := autolinkScheme(inner); ok {
		_ = scheme
		kind = ast.AutolinkURL
		dest = inner
	} else if looksLikeEmail(inner) {
		kind = ast.AutolinkEmail
		dest = "mailto:" + inner
	} else {
		return false
	}

	n := ast.New(ast.Autolink)
	n.AutoKind = kind
	n.Destination = dest
	n.Literal = inner
	n.Span = p.spanFor(p.pos, p.pos+closeIdx+1)
	parent.AppendChild(n)
	p.pos += closeIdx + 1
	return true
}

// autolinkScheme reports whether s begins with "scheme:" per CommonMark's
// autolink grammar (2-32 alphanumerics/+/-/. then ':').
func autolinkScheme(s string) (string, bool) {
	i := 0
	for i < len(s) && (isAlnum(s[i]) || s[i] == '+' || s[i] == '-' || s[i] == '.') {
		i++
	}
	if i < 2 || i > 32 || i >= len(s) || s[i] != ':' {
		return "", false
	}
	return s[:i], true
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// looksLikeEmail is a pragmatic approximation of CommonMark's email
// autolink grammar: local@domain with no whitespace, at least one dot in
// the domain.
func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(s, " \t<>")
}

// tryRawHTML consumes a raw inline HTML tag: open, closing, comment,
// processing instruction, or declaration, spanning to its own '>'.
func (p *parser) tryRawHTML(parent *ast.Node) bool {
	rest := p.text[p.pos:]
	var end int
	switch {
	case strings.HasPrefix(rest, "<!--"):
		end = strings.Index(rest, "-->")
		if end < 0 {
			return false
		}
		end += 3
	case strings.HasPrefix(rest, "<?"):
		end = strings.Index(rest, "?>")
		if end < 0 {
			return false
		}
		end += 2
	default:
		closeIdx := strings.IndexByte(rest, '>')
		if closeIdx < 0 || !looksLikeTag(rest[:closeIdx+1]) {
			return false
		}
		end = closeIdx + 1
	}

	n := ast.New(ast.RawHTML)
	n.Literal = rest[:end]
	n.Span = p.spanFor(p.pos, p.pos+end)
	parent.AppendChild(n)
	p.pos += end
	return true
}

func looksLikeTag(s string) bool {
	i := 1
	if i < len(s) && s[i] == '/' {
		i++
	}
	start := i
	for i < len(s) && (isAlnum(s[i]) || s[i] == '-') {
		i++
	}
	return i > start
}

// tryAutolinkLiteral consumes a GFM autolink literal starting at p.pos:
// `http://`, `https://` or `www.` followed by a domain, or a bare email
// address. It does not match right after an alphanumeric byte.
func (p *parser) tryAutolinkLiteral(parent *ast.Node) bool {
	rest := p.text[p.pos:]
	if p.pos > 0 && isAlnum(p.text[p.pos-1]) {
		return false // must start at a non-alphanumeric boundary
	}

	var schemeLen int
	switch {
	case strings.HasPrefix(rest, "https://"):
		schemeLen = len("https://")
	case strings.HasPrefix(rest, "http://"):
		schemeLen = len("http://")
	case strings.HasPrefix(rest, "www."):
		schemeLen = len("www.")
	default:
		if email, n, ok := bareEmailLiteral(rest); ok {
			node := ast.New(ast.Autolink)
			node.AutoKind = ast.AutolinkEmail
			node.Destination = "mailto:" + email
			node.Literal = email
			node.Span = p.spanFor(p.pos, p.pos+n)
			parent.AppendChild(node)
			p.pos += n
			return true
		}
		return false
	}

	i := schemeLen
	for i < len(rest) && !isURLBoundary(rest[i]) {
		i++
	}
	end := trimAutolinkLiteralTail(rest[:i])
	if end <= schemeLen {
		return false
	}
	literal := rest[:end]
	dest := literal
	if schemeLen == len("www.") {
		dest = "http://" + literal
	}
	n := ast.New(ast.Autolink)
	n.AutoKind = ast.AutolinkURL
	n.Destination = dest
	n.Literal = literal
	n.Span = p.spanFor(p.pos, p.pos+end)
	parent.AppendChild(n)
	p.pos += end
	return true
}

func isURLBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '<'
}

// trimAutolinkLiteralTail trims trailing punctuation excluded from a GFM
// autolink literal's destination, and an unmatched trailing ')'.
func trimAutolinkLiteralTail(s string) int {
	end := len(s)
	for end > 0 && strings.IndexByte("?!.,:*_~", s[end-1]) >= 0 {
		end--
	}
	for end > 0 && s[end-1] == ')' {
		depth := 0
		for _, c := range s[:end] {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
		}
		if depth >= 0 {
			break
		}
		end--
	}
	return end
}

// bareEmailLiteral recognizes a bare email address autolink literal
// (no surrounding `<>`) at the start of s.
func bareEmailLiteral(s string) (email string, n int, ok bool) {
	i := 0
	for i < len(s) && (isAlnum(s[i]) || strings.IndexByte(".+-_", s[i]) >= 0) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '@' {
		return "", 0, false
	}
	j := i + 1
	for j < len(s) && (isAlnum(s[j]) || s[j] == '.' || s[j] == '-') {
		j++
	}
	if !strings.Contains(s[i+1:j], ".") {
		return "", 0, false
	}
	return s[:j], j, true
}
