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

func parseInline(t *testing.T, text string) *ast.Node {
	t.Helper()
	return inline.Parse(text, 1, refs.NewTable(), opts.Default(), &diag.Collector{}, ast.Paragraph)
}

func TestEmphasis_single(t *testing.T) {
	root := parseInline(t, "*a*")
	require.Equal(t, 1, root.ChildCount())
	em := root.FirstChild
	assert.Equal(t, ast.Emphasis, em.Kind)
	require.Equal(t, 1, em.ChildCount())
	assert.Equal(t, "a", em.FirstChild.Literal)
}

func TestEmphasis_strong(t *testing.T) {
	root := parseInline(t, "**a**")
	require.Equal(t, 1, root.ChildCount())
	strong := root.FirstChild
	assert.Equal(t, ast.Strong, strong.Kind)
	assert.Equal(t, "a", strong.FirstChild.Literal)
}

func TestEmphasis_strongInsideEmphasis(t *testing.T) {
	root := parseInline(t, "***a***")
	require.Equal(t, 1, root.ChildCount())
	em := root.FirstChild
	require.Equal(t, ast.Emphasis, em.Kind)
	require.Equal(t, 1, em.ChildCount())
	strong := em.FirstChild
	assert.Equal(t, ast.Strong, strong.Kind)
	assert.Equal(t, "a", strong.FirstChild.Literal)
}

func TestEmphasis_intrawordUnderscoreIsLiteral(t *testing.T) {
	root := parseInline(t, "foo_bar_baz")
	require.Equal(t, 1, root.ChildCount())
	text := root.FirstChild
	assert.Equal(t, ast.Text, text.Kind)
	assert.Equal(t, "foo_bar_baz", text.Literal)
}

func TestEmphasis_intrawordAsteriskStillEmphasizes(t *testing.T) {
	root := parseInline(t, "foo*bar*baz")
	require.Equal(t, 3, root.ChildCount())
	assert.Equal(t, ast.Text, root.FirstChild.Kind)
	assert.Equal(t, "foo", root.FirstChild.Literal)
	em := root.FirstChild.Next
	assert.Equal(t, ast.Emphasis, em.Kind)
	assert.Equal(t, "bar", em.FirstChild.Literal)
	assert.Equal(t, "baz", em.Next.Literal)
}

func TestEmphasis_unmatchedDelimiterIsLiteral(t *testing.T) {
	// "*a": the run can only open (preceded by a boundary, followed by a
	// non-space), never closes, so it survives the scan as a bare marker
	// node beside its own separately-scanned text, both rendering as plain
	// literal asterisk-then-text either way.
	root := parseInline(t, "*a")
	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, "*", root.FirstChild.Literal)
	assert.Equal(t, "a", root.FirstChild.Next.Literal)
}
