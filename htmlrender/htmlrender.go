// Package htmlrender renders a parsed AST to the canonical HTML emission
// table of §4.4: deterministic, taking only the tree and Options, and
// never consulting diagnostics (the parser and renderer are kept
// strictly decoupled).
package htmlrender

import (
	"fmt"
	"strings"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/emoji"
	"github.com/jcorbin/marco/opts"
	anchor "github.com/shurcooL/sanitized_anchor_name"
)

// Render walks doc (a Document node produced by markdown.Parse, with
// inline content already resolved) and returns its HTML rendering.
func Render(doc *ast.Node, o opts.Options) string {
	var b strings.Builder
	used := make(map[string]int)
	renderBlocks(&b, doc, o, false, used)
	renderFootnotes(&b, doc, o)
	return b.String()
}

func renderBlocks(b *strings.Builder, parent *ast.Node, o opts.Options, tight bool, used map[string]int) {
	for c := parent.FirstChild; c != nil; c = c.Next {
		renderBlock(b, c, o, tight, used)
	}
}

func renderBlock(b *strings.Builder, n *ast.Node, o opts.Options, tight bool, used map[string]int) {
	switch n.Kind {
	case ast.Heading:
		id := headingID(n, o, used)
		idAttr := ""
		if id != "" {
			idAttr = fmt.Sprintf(" id=%q", id)
		}
		fmt.Fprintf(b, "<h%d%s>", n.Level, idAttr)
		renderInlines(b, n, o)
		fmt.Fprintf(b, "</h%d>\n", n.Level)

	case ast.Paragraph:
		if tight {
			renderInlines(b, n, o)
			b.WriteByte('\n')
			return
		}
		b.WriteString("<p>")
		renderInlines(b, n, o)
		b.WriteString("</p>\n")

	case ast.BlockQuote:
		b.WriteString("<blockquote>\n")
		renderBlocks(b, n, o, false, used)
		b.WriteString("</blockquote>\n")

	case ast.List:
		tag := "ul"
		attrs := ""
		if n.Ordered {
			tag = "ol"
			if n.Start != 1 {
				attrs = fmt.Sprintf(" start=\"%d\"", n.Start)
			}
		}
		fmt.Fprintf(b, "<%s%s>\n", tag, attrs)
		for c := n.FirstChild; c != nil; c = c.Next {
			renderBlock(b, c, o, n.Tight, used)
		}
		fmt.Fprintf(b, "</%s>\n", tag)

	case ast.Item:
		b.WriteString("<li>")
		if n.Task != ast.NoTask {
			b.WriteString(taskCheckboxHTML(n.Task))
		}
		if tight {
			for c := n.FirstChild; c != nil; c = c.Next {
				renderBlock(b, c, o, true, used)
			}
		} else {
			b.WriteByte('\n')
			renderBlocks(b, n, o, false, used)
		}
		b.WriteString("</li>\n")

	case ast.CodeBlock:
		class := ""
		if n.InfoString != "" {
			class = fmt.Sprintf(" class=\"language-%s\"", escapeAttr(firstWord(n.InfoString)))
		}
		fmt.Fprintf(b, "<pre><code%s>", class)
		b.WriteString(escapeText(n.Literal))
		if !strings.HasSuffix(n.Literal, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString("</code></pre>\n")

	case ast.HTMLBlock:
		if o.UnsafeHTML {
			b.WriteString(n.Literal)
		} else {
			b.WriteString(escapeText(n.Literal))
		}
		if !strings.HasSuffix(n.Literal, "\n") {
			b.WriteByte('\n')
		}

	case ast.ThematicBreak:
		b.WriteString("<hr />\n")

	case ast.Table:
		renderTable(b, n, o, used)

	case ast.Admonition:
		fmt.Fprintf(b, "<div class=\"admonition admonition-%s\">", escapeAttr(n.AdmonitionKind))
		if n.AdmonitionTitle != "" {
			fmt.Fprintf(b, "<p class=\"admonition-title\">%s</p>", escapeText(n.AdmonitionTitle))
		}
		renderBlocks(b, n, o, false, used)
		b.WriteString("</div>\n")

	case ast.TabBlock:
		renderTabBlock(b, n, o, used)

	case ast.Slideshow:
		renderSlideshow(b, n, o, used)

	case ast.MathBlock:
		b.WriteString("<div class=\"math math-display\">")
		b.WriteString(escapeText(n.Literal))
		b.WriteString("</div>\n")

	case ast.FootnoteDefinition:
		// rendered at document end by renderFootnotes, not inline here.

	default:
		renderBlocks(b, n, o, tight, used)
	}
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

func taskCheckboxHTML(t ast.TaskState) string {
	if t == ast.Checked {
		return `<input type="checkbox" disabled checked /> `
	}
	return `<input type="checkbox" disabled /> `
}

// headingID returns the id attribute value for a heading: its explicit
// id if set, else (when heading_ids is on) a collision-avoided slug
// derived from its plain text via the same algorithm GitHub uses.
func headingID(n *ast.Node, o opts.Options, used map[string]int) string {
	id := n.ID
	if id == "" {
		if !o.HeadingIDs {
			return ""
		}
		id = anchor.Create(ast.TextContent(n))
		if id == "" {
			return ""
		}
	}
	if count, seen := used[id]; seen {
		used[id] = count + 1
		return fmt.Sprintf("%s-%d", id, count+1)
	}
	used[id] = 0
	return id
}

func renderTable(b *strings.Builder, n *ast.Node, o opts.Options, used map[string]int) {
	b.WriteString("<table>\n")
	for c := n.FirstChild; c != nil; c = c.Next {
		switch c.Kind {
		case ast.TableHead:
			b.WriteString("<thead>\n")
			renderTableRows(b, c, o, true)
			b.WriteString("</thead>\n")
		case ast.TableBody:
			b.WriteString("<tbody>\n")
			renderTableRows(b, c, o, false)
			b.WriteString("</tbody>\n")
		}
	}
	b.WriteString("</table>\n")
}

func renderTableRows(b *strings.Builder, parent *ast.Node, o opts.Options, header bool) {
	for row := parent.FirstChild; row != nil; row = row.Next {
		b.WriteString("<tr>")
		for cell := row.FirstChild; cell != nil; cell = cell.Next {
			tag := "td"
			if header {
				tag = "th"
			}
			style := ""
			if cell.Align != ast.AlignNone {
				style = fmt.Sprintf(" style=\"text-align:%s\"", cell.Align)
			}
			fmt.Fprintf(b, "<%s%s>", tag, style)
			renderInlines(b, cell, o)
			fmt.Fprintf(b, "</%s>", tag)
		}
		b.WriteString("</tr>\n")
	}
}

func renderTabBlock(b *strings.Builder, n *ast.Node, o opts.Options, used map[string]int) {
	b.WriteString("<div class=\"tabs\">\n")
	i := 0
	for tab := n.FirstChild; tab != nil; tab = tab.Next {
		i++
		name := tab.Title
		if name == "" {
			name = fmt.Sprintf("tab-%d", i)
		}
		inputID := fmt.Sprintf("%s-tab-%d", tabGroupID(n), i)
		checked := ""
		if i == 1 {
			checked = " checked"
		}
		fmt.Fprintf(b, "<input type=\"radio\" name=\"%s\" id=%q%s />\n", tabGroupID(n), inputID, checked)
		fmt.Fprintf(b, "<label for=%q>%s</label>\n", inputID, escapeText(name))
		b.WriteString("<div class=\"tab-panel\">\n")
		renderBlocks(b, tab, o, false, used)
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func tabGroupID(n *ast.Node) string {
	return fmt.Sprintf("tabs-%d", n.Span.Start.Line)
}

func renderSlideshow(b *strings.Builder, n *ast.Node, o opts.Options, used map[string]int) {
	attrs := ""
	if n.Timer > 0 {
		attrs = fmt.Sprintf(" data-timer=\"%d\"", n.Timer)
	}
	fmt.Fprintf(b, "<div class=\"slideshow\"%s>\n", attrs)
	for slide := n.FirstChild; slide != nil; slide = slide.Next {
		b.WriteString("<section class=\"slide\">\n")
		renderBlocks(b, slide, o, false, used)
		b.WriteString("</section>\n")
	}
	b.WriteString("</div>\n")
}

func renderInlines(b *strings.Builder, parent *ast.Node, o opts.Options) {
	for c := parent.FirstChild; c != nil; c = c.Next {
		renderInline(b, c, o)
	}
}

func renderInline(b *strings.Builder, n *ast.Node, o opts.Options) {
	switch n.Kind {
	case ast.Text:
		b.WriteString(escapeText(n.Literal))
	case ast.SoftBreak:
		b.WriteByte('\n')
	case ast.HardBreak:
		b.WriteString("<br />\n")
	case ast.Emphasis:
		b.WriteString("<em>")
		renderInlines(b, n, o)
		b.WriteString("</em>")
	case ast.Strong:
		b.WriteString("<strong>")
		renderInlines(b, n, o)
		b.WriteString("</strong>")
	case ast.Strikethrough:
		b.WriteString("<del>")
		renderInlines(b, n, o)
		b.WriteString("</del>")
	case ast.Highlight:
		b.WriteString("<mark>")
		renderInlines(b, n, o)
		b.WriteString("</mark>")
	case ast.Superscript:
		b.WriteString("<sup>")
		renderInlines(b, n, o)
		b.WriteString("</sup>")
	case ast.Subscript:
		b.WriteString("<sub>")
		renderInlines(b, n, o)
		b.WriteString("</sub>")
	case ast.Code:
		b.WriteString("<code>")
		b.WriteString(escapeText(n.Literal))
		b.WriteString("</code>")
	case ast.Link:
		fmt.Fprintf(b, "<a href=%q", escapeURL(n.Destination))
		if n.Title != "" {
			fmt.Fprintf(b, " title=%q", escapeAttr(n.Title))
		}
		b.WriteString(">")
		renderInlines(b, n, o)
		b.WriteString("</a>")
	case ast.Image:
		var altText strings.Builder
		for c := n.FirstChild; c != nil; c = c.Next {
			altText.WriteString(ast.TextContent(c))
		}
		alt := altText.String()
		fmt.Fprintf(b, "<img src=%q alt=%q", escapeURL(n.Destination), escapeAttr(alt))
		if n.Title != "" {
			fmt.Fprintf(b, " title=%q", escapeAttr(n.Title))
		}
		b.WriteString(" />")
	case ast.Autolink:
		text := n.Literal
		fmt.Fprintf(b, "<a href=%q>%s</a>", escapeURL(n.Destination), escapeText(text))
	case ast.RawHTML:
		if o.UnsafeHTML {
			b.WriteString(n.Literal)
		} else {
			b.WriteString(escapeText(n.Literal))
		}
	case ast.FootnoteReference, ast.InlineFootnote:
		fmt.Fprintf(b, "<sup class=\"footnote-ref\"><a href=\"#fn-%d\">%d</a></sup>", n.Number, n.Number)
	case ast.TaskMarker:
		b.WriteString(taskCheckboxHTML(n.Task))
	case ast.UserMention:
		display := escapeText(mentionDisplay(n))
		if n.Destination != "" {
			fmt.Fprintf(b, "<a class=\"mention\" href=%q>%s</a>", escapeURL(n.Destination), display)
		} else {
			fmt.Fprintf(b, "<span class=\"mention\">%s</span>", display)
		}
	case ast.EmojiShortcode:
		if rendered, ok := emoji.Lookup(n.Literal); ok {
			b.WriteString(rendered)
		} else {
			fmt.Fprintf(b, ":%s:", escapeText(n.Literal))
		}
	case ast.MathInline:
		b.WriteString("<span class=\"math math-inline\">")
		b.WriteString(escapeText(n.Literal))
		b.WriteString("</span>")
	default:
		renderInlines(b, n, o)
	}
}

func mentionDisplay(n *ast.Node) string {
	if n.Display != "" {
		return n.Display
	}
	return "@" + n.Username
}

// renderFootnotes collects every referenced footnote (block definitions
// and inline `^[...]` footnotes alike) across the whole tree, in
// first-reference order, and appends the trailing footnotes section.
func renderFootnotes(b *strings.Builder, doc *ast.Node, o opts.Options) {
	var notes []*ast.Node
	doc.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		if entering && (n.Kind == ast.FootnoteDefinition || n.Kind == ast.InlineFootnote) && n.Number > 0 {
			notes = append(notes, n)
		}
		return ast.GoToNext
	})
	if len(notes) == 0 {
		return
	}
	for i := 1; i < len(notes); i++ {
		for j := i; j > 0 && notes[j-1].Number > notes[j].Number; j-- {
			notes[j-1], notes[j] = notes[j], notes[j-1]
		}
	}

	b.WriteString("<section class=\"footnotes\">\n<ol>\n")
	used := make(map[string]int)
	for _, n := range notes {
		fmt.Fprintf(b, "<li id=\"fn-%d\">", n.Number)
		if n.Kind == ast.FootnoteDefinition {
			renderFootnoteBody(b, n, o, used, n.Number)
		} else {
			renderInlines(b, n, o)
			fmt.Fprintf(b, "<a href=\"#fnref-%d\">↩</a>", n.Number)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n</section>\n")
}

// renderFootnoteBody renders a FootnoteDefinition's block content,
// appending the backlink directly after the text rather than as a
// trailing block. A single-paragraph definition (the common case) has its
// <p> unwrapped entirely, matching the flat `note.<a ...>` shape of the
// canonical example; a multi-block definition keeps its paragraphs and
// splices the backlink into the last one instead.
func renderFootnoteBody(b *strings.Builder, n *ast.Node, o opts.Options, used map[string]int, number int) {
	backlink := fmt.Sprintf("<a href=\"#fnref-%d\">↩</a>", number)
	if n.FirstChild != nil && n.FirstChild == n.LastChild && n.FirstChild.Kind == ast.Paragraph {
		renderInlines(b, n.FirstChild, o)
		b.WriteString(backlink)
		return
	}
	var body strings.Builder
	renderBlocks(&body, n, o, false, used)
	text := body.String()
	if strings.HasSuffix(text, "</p>\n") {
		text = text[:len(text)-len("</p>\n")] + backlink + "</p>\n"
	} else {
		text += backlink
	}
	b.WriteString(text)
}
