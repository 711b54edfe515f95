package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/marco/ast"
	"github.com/jcorbin/marco/refs"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"Foo", "foo"},
		{"  Foo   Bar  ", "foo bar"},
		{"FOO\tBAR", "foo bar"},
		{"", ""},
	} {
		assert.Equal(t, tc.want, refs.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestTable_DefineLink(t *testing.T) {
	table := refs.NewTable()
	require.True(t, table.DefineLink("Foo", refs.Definition{Destination: "/a"}))
	require.False(t, table.DefineLink("foo", refs.Definition{Destination: "/b"}), "second definition of a normalized-equal label must lose")

	def, ok := table.LookupLink("  FOO  ")
	require.True(t, ok)
	assert.Equal(t, "/a", def.Destination)

	_, ok = table.LookupLink("bar")
	assert.False(t, ok)
}

func TestTable_ReferenceFootnote(t *testing.T) {
	table := refs.NewTable()
	node := ast.New(ast.FootnoteDefinition)
	require.True(t, table.DefineFootnote("a", node, ast.Span{}))

	n1, ok := table.ReferenceFootnote("a")
	require.True(t, ok)
	assert.Equal(t, 1, n1)
	assert.Equal(t, 1, node.Number, "the definition node itself is stamped with its number")

	n2, ok := table.ReferenceFootnote("a")
	require.True(t, ok)
	assert.Equal(t, n1, n2, "repeated references reuse the first-assigned number")

	_, ok = table.ReferenceFootnote("missing")
	assert.False(t, ok)
}

func TestTable_ReferenceFootnote_numberingIsFirstReferenceOrder(t *testing.T) {
	table := refs.NewTable()
	na := ast.New(ast.FootnoteDefinition)
	nb := ast.New(ast.FootnoteDefinition)
	require.True(t, table.DefineFootnote("a", na, ast.Span{}))
	require.True(t, table.DefineFootnote("b", nb, ast.Span{}))

	// b is referenced first in the document, despite being defined second.
	numB, _ := table.ReferenceFootnote("b")
	numA, _ := table.ReferenceFootnote("a")
	assert.Equal(t, 1, numB)
	assert.Equal(t, 2, numA)

	used := table.FootnotesInUseOrder()
	if assert.Len(t, used, 2) {
		assert.Equal(t, "b", used[0].Label)
		assert.Equal(t, "a", used[1].Label)
	}
}

func TestTable_DefineInlineFootnote(t *testing.T) {
	table := refs.NewTable()
	n1 := ast.New(ast.InlineFootnote)
	label1, num1 := table.DefineInlineFootnote(n1, ast.Span{})
	assert.Equal(t, 1, num1)
	assert.Equal(t, num1, n1.Number)

	n2 := ast.New(ast.InlineFootnote)
	label2, num2 := table.DefineInlineFootnote(n2, ast.Span{})
	assert.NotEqual(t, label1, label2, "each inline footnote gets a distinct synthesized label")
	assert.Equal(t, 2, num2)
}

func TestTable_FootnotesInUseOrder_omitsUnreferenced(t *testing.T) {
	table := refs.NewTable()
	used := ast.New(ast.FootnoteDefinition)
	unused := ast.New(ast.FootnoteDefinition)
	require.True(t, table.DefineFootnote("used", used, ast.Span{}))
	require.True(t, table.DefineFootnote("unused", unused, ast.Span{}))

	_, _ = table.ReferenceFootnote("used")

	got := table.FootnotesInUseOrder()
	if assert.Len(t, got, 1) {
		assert.Equal(t, "used", got[0].Label)
	}
}
