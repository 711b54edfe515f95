package scandown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/opts"
	"github.com/jcorbin/marco/scandown"
)

func TestParse_headingAndParagraph(t *testing.T) {
	doc, _ := scandown.Parse("# Title\n\nBody text\n", opts.Default())
	require.Equal(t, 2, doc.ChildCount())

	h := doc.FirstChild
	assert.Equal(t, ast.Heading, h.Kind)
	assert.Equal(t, 1, h.Level)

	p := h.Next
	assert.Equal(t, ast.Paragraph, p.Kind)
}

func TestParse_blockQuoteNesting(t *testing.T) {
	doc, _ := scandown.Parse("> outer\n>> inner\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	outer := doc.FirstChild
	require.Equal(t, ast.BlockQuote, outer.Kind)

	// the outer quote's content is its own paragraph plus a nested quote
	var inner *ast.Node
	for c := outer.FirstChild; c != nil; c = c.Next {
		if c.Kind == ast.BlockQuote {
			inner = c
		}
	}
	require.NotNil(t, inner, "nested '>>' line must produce a nested BlockQuote")
}

func TestParse_tightList(t *testing.T) {
	doc, _ := scandown.Parse("- a\n- b\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	list := doc.FirstChild
	require.Equal(t, ast.List, list.Kind)
	assert.False(t, list.Ordered)
	assert.True(t, list.Tight)
	assert.Equal(t, 2, list.ChildCount())
	assert.Equal(t, ast.Item, list.FirstChild.Kind)
}

func TestParse_looseListWhenBlankLineBetweenItems(t *testing.T) {
	doc, _ := scandown.Parse("- a\n\n- b\n", opts.Default())
	list := doc.FirstChild
	require.Equal(t, ast.List, list.Kind)
	assert.False(t, list.Tight)
}

func TestParse_orderedListStart(t *testing.T) {
	doc, _ := scandown.Parse("3. a\n4. b\n", opts.Default())
	list := doc.FirstChild
	require.Equal(t, ast.List, list.Kind)
	assert.True(t, list.Ordered)
	assert.Equal(t, 3, list.Start)
}

func TestParse_taskListMarksItems(t *testing.T) {
	doc, _ := scandown.Parse("- [x] done\n- [ ] todo\n", opts.Default())
	list := doc.FirstChild
	require.Equal(t, 2, list.ChildCount())
	assert.Equal(t, ast.Checked, list.FirstChild.Task)
	assert.Equal(t, ast.Unchecked, list.FirstChild.Next.Task)
}

func TestParse_fencedCodeBlock(t *testing.T) {
	doc, _ := scandown.Parse("```go\nfmt.Println(1)\n```\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	cb := doc.FirstChild
	require.Equal(t, ast.CodeBlock, cb.Kind)
	assert.Equal(t, "go", cb.InfoString)
	assert.Equal(t, "fmt.Println(1)\n", cb.Literal)
}

func TestParse_thematicBreak(t *testing.T) {
	doc, _ := scandown.Parse("---\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	assert.Equal(t, ast.ThematicBreak, doc.FirstChild.Kind)
}

func TestParse_mathBlock(t *testing.T) {
	o := opts.Default()
	doc, _ := scandown.Parse("$$\nx^2 + y^2\n$$\n", o)
	require.Equal(t, 1, doc.ChildCount())
	mb := doc.FirstChild
	require.Equal(t, ast.MathBlock, mb.Kind)
	assert.Equal(t, "x^2 + y^2\n", mb.Literal)
}

func TestParse_fencedAdmonition(t *testing.T) {
	doc, _ := scandown.Parse(":::warning[Careful]\nbody\n:::\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	adm := doc.FirstChild
	require.Equal(t, ast.Admonition, adm.Kind)
	assert.Equal(t, "warning", adm.AdmonitionKind)
	assert.Equal(t, "Careful", adm.AdmonitionTitle)
}

func TestParse_tabBlock(t *testing.T) {
	doc, _ := scandown.Parse(":::tabs\n--- one ---\nFirst\n--- two ---\nSecond\n:::\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	tabs := doc.FirstChild
	require.Equal(t, ast.TabBlock, tabs.Kind)
	assert.Equal(t, 2, tabs.ChildCount())
}

func TestParse_htmlBlockCapturesRawLines(t *testing.T) {
	doc, _ := scandown.Parse("<div>\nraw\n</div>\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	assert.Equal(t, ast.HTMLBlock, doc.FirstChild.Kind)
}

func TestParse_gfmTable(t *testing.T) {
	doc, _ := scandown.Parse("| a | b |\n|---|---|\n| 1 | 2 |\n", opts.Default())
	require.Equal(t, 1, doc.ChildCount())
	table := doc.FirstChild
	require.Equal(t, ast.Table, table.Kind)

	var head, body *ast.Node
	for c := table.FirstChild; c != nil; c = c.Next {
		switch c.Kind {
		case ast.TableHead:
			head = c
		case ast.TableBody:
			body = c
		}
	}
	require.NotNil(t, head)
	require.NotNil(t, body)
	assert.Equal(t, 1, body.ChildCount())
}

func TestScanner_maxNestingDepthDemotesToParagraph(t *testing.T) {
	o := opts.Default()
	o.MaxNestingDepth = 2
	s := scandown.NewScanner(o)
	doc := s.Parse("> > too deep\n")

	var sawDiag bool
	for _, d := range s.Diagnostics() {
		if d.Code == diag.NestingDepthExceeded {
			sawDiag = true
		}
	}
	assert.True(t, sawDiag, "nesting past MaxNestingDepth must be recorded as a diagnostic")
	require.Equal(t, 1, doc.ChildCount())
	assert.Equal(t, ast.BlockQuote, doc.FirstChild.Kind)
}

func TestParse_linkReferenceDefinitionDoesNotProduceABlock(t *testing.T) {
	doc, refTable := scandown.Parse("[ref]: /dest \"Title\"\n", opts.Default())
	assert.Equal(t, 0, doc.ChildCount(), "a line consisting only of a link reference definition produces no visible block")

	def, ok := refTable.LookupLink("ref")
	require.True(t, ok)
	assert.Equal(t, "/dest", def.Destination)
	assert.Equal(t, "Title", def.Title)
}
