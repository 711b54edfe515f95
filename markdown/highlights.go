package markdown

import "github.com/jcorbin/marco/ast"

// HighlightTag names an editor-highlightable syntax category, per §6.
type HighlightTag int

// Highlight tags.
const (
	HeadingTag HighlightTag = iota
	EmphasisTag
	StrongTag
	StrikethroughTag
	HighlightMarkTag
	CodeTag
	CodeBlockTag
	LinkTag
	ImageTag
	AutolinkTag
	BlockQuoteTag
	ListMarkerTag
	AdmonitionTag
	TableDelimiterTag
	FootnoteMarkerTag
	MentionTag
	EmojiTag
	MathTag
)

// Highlight is one (span, tag) pair for editor syntax highlighting.
// Level is only meaningful for HeadingTag.
type Highlight struct {
	Span  ast.Span
	Tag   HighlightTag
	Level int
}

// Highlights derives highlight spans by a second pass over the finished
// AST (§9: "to keep the parser pure and the highlighter swappable"),
// rather than during parsing. A List/Table's own opening-marker span
// isn't tracked separately from its content, so ListMarkerTag and
// TableDelimiterTag are approximated by each Item's and Table's full
// span respectively; a consumer wanting marker-only ranges would need a
// finer-grained span on those AST nodes than this engine currently keeps.
func Highlights(doc *ast.Node) []Highlight {
	var out []Highlight
	doc.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n.Kind {
		case ast.Heading:
			out = append(out, Highlight{n.Span, HeadingTag, n.Level})
		case ast.Emphasis:
			out = append(out, Highlight{n.Span, EmphasisTag, 0})
		case ast.Strong:
			out = append(out, Highlight{n.Span, StrongTag, 0})
		case ast.Strikethrough:
			out = append(out, Highlight{n.Span, StrikethroughTag, 0})
		case ast.Highlight:
			out = append(out, Highlight{n.Span, HighlightMarkTag, 0})
		case ast.Code:
			out = append(out, Highlight{n.Span, CodeTag, 0})
		case ast.CodeBlock:
			out = append(out, Highlight{n.Span, CodeBlockTag, 0})
		case ast.Link:
			out = append(out, Highlight{n.Span, LinkTag, 0})
		case ast.Image:
			out = append(out, Highlight{n.Span, ImageTag, 0})
		case ast.Autolink:
			out = append(out, Highlight{n.Span, AutolinkTag, 0})
		case ast.BlockQuote:
			out = append(out, Highlight{n.Span, BlockQuoteTag, 0})
		case ast.Item:
			out = append(out, Highlight{n.Span, ListMarkerTag, 0})
		case ast.Admonition:
			out = append(out, Highlight{n.Span, AdmonitionTag, 0})
		case ast.Table:
			out = append(out, Highlight{n.Span, TableDelimiterTag, 0})
		case ast.FootnoteReference, ast.InlineFootnote:
			out = append(out, Highlight{n.Span, FootnoteMarkerTag, 0})
		case ast.UserMention:
			out = append(out, Highlight{n.Span, MentionTag, 0})
		case ast.EmojiShortcode:
			out = append(out, Highlight{n.Span, EmojiTag, 0})
		case ast.MathInline, ast.MathBlock:
			out = append(out, Highlight{n.Span, MathTag, 0})
		}
		return ast.GoToNext
	})
	return out
}
