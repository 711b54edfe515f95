package inline

import (
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/emoji"
)

// tryEmojiShortcode consumes `:name:` when name is a recognized shortcode;
// an unrecognized or malformed body is left as literal text (the colon is
// handled by advanceText on the next scan iteration).
func (p *parser) tryEmojiShortcode(parent *ast.Node) bool {
	start := p.pos
	i := start + 1
	end := strings.IndexByte(p.text[i:], ':')
	if end < 0 {
		return false
	}
	name := p.text[i : i+end]
	if !emoji.ValidName(name) || !emoji.Known(name) {
		return false
	}
	n := ast.New(ast.EmojiShortcode)
	n.Literal = name
	n.Span = p.spanFor(start, i+end+1)
	parent.AppendChild(n)
	p.pos = i + end + 1
	return true
}

// tryMention consumes `@username[platform](display)`, both the bracketed
// platform and the parenthesized display name optional. The platform
// resolves through the configured mention.Resolver; an unresolved platform
// still produces a UserMention (with no Destination) so the renderer can
// fall back to plain display text.
func (p *parser) tryMention(parent *ast.Node) bool {
	start := p.pos
	i := start + 1
	nameStart := i
	for i < len(p.text) && (isAlnum(p.text[i]) || p.text[i] == '_' || p.text[i] == '-') {
		i++
	}
	if i == nameStart {
		return false
	}
	username := p.text[nameStart:i]

	var platform string
	if i < len(p.text) && p.text[i] == '[' {
		end := strings.IndexByte(p.text[i:], ']')
		if end < 0 {
			return false
		}
		platform = p.text[i+1 : i+end]
		i += end + 1
	}

	var display string
	if i < len(p.text) && p.text[i] == '(' {
		end := strings.IndexByte(p.text[i:], ')')
		if end < 0 {
			return false
		}
		display = p.text[i+1 : i+end]
		i += end + 1
	}

	n := ast.New(ast.UserMention)
	n.Username = username
	n.Platform = platform
	n.Display = display
	if url, ok := p.o.Resolver().Resolve(username, platform); ok {
		n.Destination = url
	}
	n.Span = p.spanFor(start, i)
	parent.AppendChild(n)
	p.pos = i
	return true
}
