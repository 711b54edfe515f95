package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/diag"
	"github.com/jcorbin/marco/opts"
	"github.com/jcorbin/marco/refs"

	"github.com/jcorbin/marco/inline"
)

func TestTaskMarker_checkedAndUnchecked(t *testing.T) {
	root := parseInline(t, "[x] done")
	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, ast.TaskMarker, root.FirstChild.Kind)
	assert.Equal(t, ast.Checked, root.FirstChild.Task)
	assert.Equal(t, "done", root.FirstChild.Next.Literal)

	root = parseInline(t, "[ ] todo")
	assert.Equal(t, ast.Unchecked, root.FirstChild.Task)
}

func TestTaskMarker_onlyAtStartOfText(t *testing.T) {
	root := parseInline(t, "see [x] here")
	root.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		if entering {
			assert.NotEqual(t, ast.TaskMarker, n.Kind, "a bracket run mid-text is not a task marker")
		}
		return ast.GoToNext
	})
}

func TestTaskMarker_disabledByOption(t *testing.T) {
	o := opts.Default()
	o.TaskLists = false
	root := inline.Parse("[x] done", 1, refs.NewTable(), o, &diag.Collector{}, ast.Paragraph)
	assert.NotEqual(t, ast.TaskMarker, root.FirstChild.Kind, "with TaskLists off, a leading '[x]' must not produce a TaskMarker")
	assert.Equal(t, "[x] done", ast.TextContent(root))
}

func TestInlineFootnote_availableWithSuperscriptDisabled(t *testing.T) {
	o := opts.Default()
	o.SuperscriptSubscript = false
	root := inline.Parse("^[a note]", 1, refs.NewTable(), o, &diag.Collector{}, ast.Paragraph)
	require.Equal(t, 1, root.ChildCount())
	assert.Equal(t, ast.InlineFootnote, root.FirstChild.Kind)
}

func TestCaret_plainSuperscriptStillDisabledWithoutOption(t *testing.T) {
	o := opts.Default()
	o.SuperscriptSubscript = false
	o.Footnotes = false
	root := inline.Parse("x^2^", 1, refs.NewTable(), o, &diag.Collector{}, ast.Paragraph)
	require.Equal(t, 1, root.ChildCount())
	assert.Equal(t, ast.Text, root.FirstChild.Kind)
	assert.Equal(t, "x^2^", root.FirstChild.Literal)
}
