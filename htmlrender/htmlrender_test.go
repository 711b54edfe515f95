package htmlrender_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/htmlrender"
	"github.com/jcorbin/marco/opts"
)

func text(s string) *ast.Node {
	n := ast.New(ast.Text)
	n.Literal = s
	return n
}

func TestRender_headingWithID(t *testing.T) {
	doc := ast.New(ast.Document)
	h := ast.New(ast.Heading)
	h.Level = 2
	h.AppendChild(text("Hi There"))
	doc.AppendChild(h)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<h2 id=\"hi-there\">Hi There</h2>\n", got)
}

func TestRender_headingIDCollisionIsDeduped(t *testing.T) {
	doc := ast.New(ast.Document)
	for i := 0; i < 2; i++ {
		h := ast.New(ast.Heading)
		h.Level = 1
		h.AppendChild(text("Dup"))
		doc.AppendChild(h)
	}

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<h1 id=\"dup\">Dup</h1>\n<h1 id=\"dup-1\">Dup</h1>\n", got)
}

func TestRender_codeBlockEscapesAndLanguageClass(t *testing.T) {
	doc := ast.New(ast.Document)
	cb := ast.New(ast.CodeBlock)
	cb.InfoString = "go run"
	cb.Literal = "a < b\n"
	doc.AppendChild(cb)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<pre><code class=\"language-go\">a &lt; b\n</code></pre>\n", got)
}

func TestRender_codeBlockWithoutTrailingNewlineGetsOne(t *testing.T) {
	doc := ast.New(ast.Document)
	cb := ast.New(ast.CodeBlock)
	cb.Literal = "a"
	doc.AppendChild(cb)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<pre><code>a\n</code></pre>\n", got)
}

func TestRender_orderedListWithStart(t *testing.T) {
	doc := ast.New(ast.Document)
	list := ast.New(ast.List)
	list.Ordered = true
	list.Start = 3
	list.Tight = true
	item := ast.New(ast.Item)
	p := ast.New(ast.Paragraph)
	p.AppendChild(text("one"))
	item.AppendChild(p)
	list.AppendChild(item)
	doc.AppendChild(list)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<ol start=\"3\">\n<li>one\n</li>\n</ol>\n", got)
}

func TestRender_htmlBlockEscapedUnlessUnsafe(t *testing.T) {
	doc := ast.New(ast.Document)
	hb := ast.New(ast.HTMLBlock)
	hb.Literal = "<div>x</div>\n"
	doc.AppendChild(hb)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "&lt;div&gt;x&lt;/div&gt;\n", got)

	o := opts.Default()
	o.UnsafeHTML = true
	got = htmlrender.Render(doc, o)
	assert.Equal(t, "<div>x</div>\n", got)
}

func TestRender_link(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	link := ast.New(ast.Link)
	link.Destination = "/a b"
	link.Title = "a \"quote\""
	link.AppendChild(text("go"))
	p.AppendChild(link)
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p><a href=\"/a%20b\" title=\"a &quot;quote&quot;\">go</a></p>\n", got)
}

func TestRender_image(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	img := ast.New(ast.Image)
	img.Destination = "/cat.png"
	img.AppendChild(text("a cat"))
	p.AppendChild(img)
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p><img src=\"/cat.png\" alt=\"a cat\" /></p>\n", got)
}

func TestRender_admonition(t *testing.T) {
	doc := ast.New(ast.Document)
	adm := ast.New(ast.Admonition)
	adm.AdmonitionKind = "warning"
	adm.AdmonitionTitle = "Careful"
	p := ast.New(ast.Paragraph)
	p.AppendChild(text("danger"))
	adm.AppendChild(p)
	doc.AppendChild(adm)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<div class=\"admonition admonition-warning\"><p class=\"admonition-title\">Careful</p><p>danger</p>\n</div>\n", got)
}

func TestRender_thematicBreak(t *testing.T) {
	doc := ast.New(ast.Document)
	doc.AppendChild(ast.New(ast.ThematicBreak))
	assert.Equal(t, "<hr />\n", htmlrender.Render(doc, opts.Default()))
}

func TestRender_mathBlock(t *testing.T) {
	doc := ast.New(ast.Document)
	mb := ast.New(ast.MathBlock)
	mb.Literal = "x^2"
	doc.AppendChild(mb)
	assert.Equal(t, "<div class=\"math math-display\">x^2</div>\n", htmlrender.Render(doc, opts.Default()))
}

func TestRender_userMention(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	m := ast.New(ast.UserMention)
	m.Username = "rsc"
	m.Platform = "github"
	m.Destination = "https://github.com/rsc"
	p.AppendChild(m)
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p><a class=\"mention\" href=\"https://github.com/rsc\">@rsc</a></p>\n", got)
}

func TestRender_userMentionUnresolvedFallsBackToSpan(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	m := ast.New(ast.UserMention)
	m.Username = "rsc"
	m.Display = "Russ"
	p.AppendChild(m)
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p><span class=\"mention\">Russ</span></p>\n", got)
}

func TestRender_emojiShortcodeUnknownFallsBackToLiteral(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	e := ast.New(ast.EmojiShortcode)
	e.Literal = "definitely_not_a_real_shortcode_xyz"
	p.AppendChild(e)
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p>:definitely_not_a_real_shortcode_xyz:</p>\n", got)
}

func TestRender_tableCellAlignment(t *testing.T) {
	doc := ast.New(ast.Document)
	table := ast.New(ast.Table)
	body := ast.New(ast.TableBody)
	row := ast.New(ast.TableRow)
	for _, a := range []ast.Align{ast.AlignNone, ast.AlignCenter} {
		cell := ast.New(ast.TableCell)
		cell.Align = a
		cell.AppendChild(text("x"))
		row.AppendChild(cell)
	}
	body.AppendChild(row)
	table.AppendChild(body)
	doc.AppendChild(table)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<table>\n<tbody>\n<tr><td>x</td><td style=\"text-align:center\">x</td></tr>\n</tbody>\n</table>\n", got)
}

func TestRender_footnoteDefinitionSingleParagraphIsUnwrappedWithBacklink(t *testing.T) {
	doc := ast.New(ast.Document)
	def := ast.New(ast.FootnoteDefinition)
	def.Number = 1
	p := ast.New(ast.Paragraph)
	p.AppendChild(text("Note."))
	def.AppendChild(p)
	doc.AppendChild(def)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<section class=\"footnotes\">\n<ol>\n<li id=\"fn-1\">Note.<a href=\"#fnref-1\">↩</a></li>\n</ol>\n</section>\n", got)
}

func TestRender_footnoteDefinitionWithMultipleBlocksKeepsParagraphs(t *testing.T) {
	doc := ast.New(ast.Document)
	def := ast.New(ast.FootnoteDefinition)
	def.Number = 1
	p1 := ast.New(ast.Paragraph)
	p1.AppendChild(text("First."))
	p2 := ast.New(ast.Paragraph)
	p2.AppendChild(text("Second."))
	def.AppendChild(p1)
	def.AppendChild(p2)
	doc.AppendChild(def)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<section class=\"footnotes\">\n<ol>\n"+
		"<li id=\"fn-1\"><p>First.</p>\n<p>Second.<a href=\"#fnref-1\">↩</a></p>\n</li>\n"+
		"</ol>\n</section>\n", got)
}

func TestRender_taskMarkerInline(t *testing.T) {
	doc := ast.New(ast.Document)
	p := ast.New(ast.Paragraph)
	m := ast.New(ast.TaskMarker)
	m.Task = ast.Checked
	p.AppendChild(m)
	p.AppendChild(text("done"))
	doc.AppendChild(p)

	got := htmlrender.Render(doc, opts.Default())
	assert.Equal(t, "<p><input type=\"checkbox\" disabled checked /> done</p>\n", got)
}
