package router

import (
	"strings"

	"github.com/heathj/delegate/dom"
	"github.com/heathj/delegate/dom/webidl"
)

// Matcher is a pure predicate over a node's observable properties (tag,
// attributes, identity). Matchers must be side-effect free; dispatch
// ordering is undefined for matchers that mutate state.
type Matcher func(*dom.Node) bool

// TagIs matches element nodes whose name equals tag, ignoring case.
func TagIs(tag webidl.DOMString) Matcher {
	return func(n *dom.Node) bool {
		return n.NodeType == dom.ElementNode &&
			strings.EqualFold(string(n.NodeName), string(tag))
	}
}

// HasAttr matches nodes carrying the named attribute, whatever its value.
func HasAttr(name webidl.DOMString) Matcher {
	return func(n *dom.Node) bool {
		return n.HasAttribute(name)
	}
}

// AttrIs matches nodes whose named attribute equals value.
func AttrIs(name, value webidl.DOMString) Matcher {
	return func(n *dom.Node) bool {
		return n.HasAttribute(name) && n.GetAttribute(name) == value
	}
}

// All matches when every given matcher matches.
func All(matchers ...Matcher) Matcher {
	return func(n *dom.Node) bool {
		for _, m := range matchers {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one given matcher matches.
func Any(matchers ...Matcher) Matcher {
	return func(n *dom.Node) bool {
		for _, m := range matchers {
			if m(n) {
				return true
			}
		}
		return false
	}
}

// Not inverts a matcher.
func Not(m Matcher) Matcher {
	return func(n *dom.Node) bool {
		return !m(n)
	}
}
