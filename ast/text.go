package ast

import "strings"

// TextContent concatenates the plain-text rendering of n's inline content:
// Text, Code and MathInline literals verbatim, an Autolink's literal text
// (its destination when the literal is empty), an EmojiShortcode as
// `:name:`, a UserMention's display text (or `@username`), a newline per
// SoftBreak/HardBreak, and recurses into every other node's children.
// Image and RawHTML nodes contribute nothing, so images never nest inside
// alt text built from it.
func TextContent(n *Node) string {
	var sb strings.Builder
	writeTextContent(&sb, n)
	return sb.String()
}

func writeTextContent(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case Text, Code, MathInline:
		sb.WriteString(n.Literal)
	case SoftBreak:
		sb.WriteByte('\n')
	case HardBreak:
		sb.WriteByte('\n')
	case Autolink:
		sb.WriteString(n.Literal)
		if n.Literal == "" {
			sb.WriteString(n.Destination)
		}
	case EmojiShortcode:
		sb.WriteByte(':')
		sb.WriteString(n.Literal)
		sb.WriteByte(':')
	case UserMention:
		if n.Display != "" {
			sb.WriteString(n.Display)
		} else {
			sb.WriteByte('@')
			sb.WriteString(n.Username)
		}
	case Image:
		// alt text never recurses into nested images
	case RawHTML:
		// raw HTML carries no textual content for alt-text purposes
	default:
		for c := n.FirstChild; c != nil; c = c.Next {
			writeTextContent(sb, c)
		}
	}
}
