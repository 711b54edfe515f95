package ast_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/marco/ast"
)

func TestNode_AppendChild(t *testing.T) {
	parent := ast.New(ast.Paragraph)
	a := ast.New(ast.Text)
	b := ast.New(ast.Text)
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Same(t, a, parent.FirstChild)
	assert.Same(t, b, parent.LastChild)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
	assert.Equal(t, 2, parent.ChildCount())
}

func TestNode_InsertBefore(t *testing.T) {
	parent := ast.New(ast.Paragraph)
	a := ast.New(ast.Text)
	c := ast.New(ast.Text)
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := ast.New(ast.Text)
	c.InsertBefore(b)

	assert.Equal(t, []*ast.Node{a, b, c}, children(parent))
}

func TestNode_Unlink(t *testing.T) {
	parent := ast.New(ast.Paragraph)
	a := ast.New(ast.Text)
	b := ast.New(ast.Text)
	c := ast.New(ast.Text)
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	b.Unlink()

	assert.Equal(t, []*ast.Node{a, c}, children(parent))
	assert.Nil(t, b.Parent)
	assert.Nil(t, b.Next)
	assert.Nil(t, b.Prev)
}

func TestNode_Walk(t *testing.T) {
	doc := ast.New(ast.Document)
	h := ast.New(ast.Heading)
	p := ast.New(ast.Paragraph)
	doc.AppendChild(h)
	doc.AppendChild(p)

	var events []string
	doc.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		dir := "enter"
		if !entering {
			dir = "exit"
		}
		events = append(events, fmt.Sprintf("%s:%s", dir, n.Kind))
		return ast.GoToNext
	})

	assert.Equal(t, []string{
		"enter:Document", "enter:Heading", "exit:Heading",
		"enter:Paragraph", "exit:Paragraph", "exit:Document",
	}, events)
}

func TestNode_Walk_skipChildren(t *testing.T) {
	doc := ast.New(ast.Document)
	h := ast.New(ast.Heading)
	text := ast.New(ast.Text)
	h.AppendChild(text)
	doc.AppendChild(h)

	var visited []ast.Kind
	doc.Walk(func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		visited = append(visited, n.Kind)
		if n.Kind == ast.Heading {
			return ast.SkipChildren
		}
		return ast.GoToNext
	})

	assert.Equal(t, []ast.Kind{ast.Document, ast.Heading}, visited, "Text child of the skipped Heading must not be visited")
}

func TestKind_IsBlock_IsInline(t *testing.T) {
	assert.True(t, ast.Heading.IsBlock())
	assert.False(t, ast.Heading.IsInline())
	assert.True(t, ast.Emphasis.IsInline())
	assert.False(t, ast.Emphasis.IsBlock())
}

func TestTextContent(t *testing.T) {
	p := ast.New(ast.Paragraph)
	text := ast.New(ast.Text)
	text.Literal = "hello "
	em := ast.New(ast.Emphasis)
	emText := ast.New(ast.Text)
	emText.Literal = "world"
	em.AppendChild(emText)
	img := ast.New(ast.Image)
	imgAlt := ast.New(ast.Text)
	imgAlt.Literal = "ignored"
	img.AppendChild(imgAlt)

	p.AppendChild(text)
	p.AppendChild(em)
	p.AppendChild(img)

	assert.Equal(t, "hello world", ast.TextContent(p))
}

func children(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	for c := n.FirstChild; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}
