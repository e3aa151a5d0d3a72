// Package dom is a minimal DOM-like host tree: enough of
// https://dom.spec.whatwg.org/#node for a delegated event router to walk
// ancestors, read tags and attributes, and attach listeners. It is not an
// HTML DOM; there is no parsing, rendering, or document lifecycle.
package dom

import (
	"sort"
	"strings"

	"github.com/heathj/delegate/dom/webidl"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
	DocumentNode
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType        NodeType
	NodeName        webidl.DOMString
	OwnerDocument   *Node
	ParentNode      *Node
	FirstChild      *Node
	LastChild       *Node
	PreviousSibling *Node
	NextSibling     *Node
	ChildNodes      NodeList
	TextContent     webidl.DOMString

	// Attributes holds element attributes as a flat name->value map.
	Attributes map[webidl.DOMString]webidl.DOMString

	listeners []*EventHandle
}

// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

func NewElement(od *Node, name webidl.DOMString) *Node {
	return &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Attributes:    map[webidl.DOMString]webidl.DOMString{},
	}
}

func NewTextNode(od *Node, text webidl.DOMString) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		TextContent:   text,
	}
}

func NewDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// IsSameNode reports pointer identity; node handles are compared by
// identity, never by structure.
// https://dom.spec.whatwg.org/#dom-node-issamenode
func (n *Node) IsSameNode(on *Node) bool { return n == on }

// Contains reports whether on is an inclusive descendant of n.
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	} else {
		n.FirstChild = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	} else {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode = nil
	node.PreviousSibling = nil
	node.NextSibling = nil
	return node
}

func (n *Node) GetRootNode() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

func (n *Node) GetAttribute(name webidl.DOMString) webidl.DOMString {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

func (n *Node) HasAttribute(name webidl.DOMString) bool {
	if n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

func (n *Node) SetAttribute(name, value webidl.DOMString) {
	if n.Attributes == nil {
		n.Attributes = map[webidl.DOMString]webidl.DOMString{}
	}
	n.Attributes[name] = value
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + string(node.NodeName)
		if len(node.Attributes) != 0 {
			e += ">"
			keys := make([]string, 0, len(node.Attributes))
			for name := range node.Attributes {
				keys = append(keys, string(name))
			}
			sort.Strings(keys)
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, name := range keys {
				e += "\n" + spaces + name + "=\"" + string(node.Attributes[webidl.DOMString(name)]) + "\""
			}
		} else {
			e += ">"
		}
		return e
	case TextNode:
		return "\"" + string(node.TextContent) + "\""
	case CommentNode:
		return "<!-- " + string(node.TextContent) + " -->"
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
