package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	ul := NewElement(nil, "ul")
	a := ul.AppendChild(NewElement(nil, "li"))
	b := ul.AppendChild(NewElement(nil, "li"))
	c := ul.AppendChild(NewElement(nil, "li"))

	require.Len(t, ul.ChildNodes, 3)
	assert.Same(t, a, ul.FirstChild)
	assert.Same(t, c, ul.LastChild)
	assert.Same(t, ul, b.ParentNode)
	assert.Same(t, a, b.PreviousSibling)
	assert.Same(t, c, b.NextSibling)
	assert.Nil(t, a.PreviousSibling)
	assert.Nil(t, c.NextSibling)
}

func TestRemoveChild(t *testing.T) {
	ul := NewElement(nil, "ul")
	a := ul.AppendChild(NewElement(nil, "li"))
	b := ul.AppendChild(NewElement(nil, "li"))
	c := ul.AppendChild(NewElement(nil, "li"))

	removed := ul.RemoveChild(b)
	require.Same(t, b, removed)
	require.Len(t, ul.ChildNodes, 2)
	assert.Same(t, c, a.NextSibling)
	assert.Same(t, a, c.PreviousSibling)
	assert.Nil(t, b.ParentNode)
	assert.Nil(t, b.PreviousSibling)
	assert.Nil(t, b.NextSibling)

	// Removing a node that is not a child mutates nothing.
	assert.Nil(t, ul.RemoveChild(NewElement(nil, "li")))
	assert.Len(t, ul.ChildNodes, 2)

	require.Same(t, a, ul.RemoveChild(a))
	assert.Same(t, c, ul.FirstChild)
	require.Same(t, c, ul.RemoveChild(c))
	assert.Nil(t, ul.FirstChild)
	assert.Nil(t, ul.LastChild)
	assert.False(t, ul.HasChildNodes())
}

func TestContainsAndRoot(t *testing.T) {
	doc := NewDocumentNode()
	ul := doc.AppendChild(NewElement(doc, "ul"))
	li := ul.AppendChild(NewElement(doc, "li"))
	text := li.AppendChild(NewTextNode(doc, "hi"))
	stray := NewElement(doc, "div")

	assert.True(t, doc.Contains(text))
	assert.True(t, ul.Contains(ul))
	assert.True(t, ul.Contains(li))
	assert.False(t, li.Contains(ul))
	assert.False(t, ul.Contains(stray))

	assert.Same(t, doc, text.GetRootNode())
	assert.Same(t, stray, stray.GetRootNode())

	assert.True(t, li.IsSameNode(li))
	assert.False(t, li.IsSameNode(NewElement(doc, "li")))
}

func TestAttributes(t *testing.T) {
	n := &Node{NodeType: ElementNode, NodeName: "li"}

	assert.False(t, n.HasAttribute("id"))
	assert.Empty(t, n.GetAttribute("id"))

	n.SetAttribute("id", "first")
	assert.True(t, n.HasAttribute("id"))
	assert.EqualValues(t, "first", n.GetAttribute("id"))

	n.SetAttribute("id", "second")
	assert.EqualValues(t, "second", n.GetAttribute("id"))
}

func TestSerialize(t *testing.T) {
	doc := NewDocumentNode()
	ul := doc.AppendChild(NewElement(doc, "ul"))
	ul.SetAttribute("id", "menu")
	li := ul.AppendChild(NewElement(doc, "li"))
	li.AppendChild(NewTextNode(doc, "hi"))

	expected := "#document\n" +
		"| <ul>\n" +
		"|   id=\"menu\"\n" +
		"|   <li>\n" +
		"|     \"hi\""
	assert.Equal(t, expected, doc.String())
}
