package svn

import (
	"strings"

	"github.com/beevik/etree"
)

// node is a thin view over a parsed XML element that hides the two schema
// quirks every report shares: values may live in an attribute or in a child
// element's text, and repeated elements (entry, logentry, path, list) may be
// collapsed to a single occurrence. str addresses attribute and child text
// uniformly, and children always yields a slice whether the element occurred
// zero, one or many times.
type node struct {
	el *etree.Element
}

// parseReport parses raw report text into its root node.
// Syntactically invalid XML surfaces as a *ParseError; no repair is attempted.
func parseReport(raw string) (*node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, &ParseError{Message: "malformed XML report", RawInput: raw, Cause: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Message: "XML report has no root element", RawInput: raw}
	}
	return &node{el: root}, nil
}

// name returns the element's tag name.
func (n *node) name() string {
	return n.el.Tag
}

// child returns the first child element with the given name, or nil.
func (n *node) child(name string) *node {
	el := n.el.SelectElement(name)
	if el == nil {
		return nil
	}
	return &node{el: el}
}

// children returns every child element with the given name, in document
// order. A single occurrence yields a one-element slice, absence yields nil.
func (n *node) children(name string) []*node {
	els := n.el.SelectElements(name)
	if len(els) == 0 {
		return nil
	}
	out := make([]*node, len(els))
	for i, el := range els {
		out[i] = &node{el: el}
	}
	return out
}

// str returns the value stored under key, probing the attribute first and
// then a child element's text. Missing keys yield "".
func (n *node) str(key string) string {
	if v := n.el.SelectAttrValue(key, ""); v != "" {
		return v
	}
	if c := n.el.SelectElement(key); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// text returns the element's own character data, trimmed.
func (n *node) text() string {
	return strings.TrimSpace(n.el.Text())
}
