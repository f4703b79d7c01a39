package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseAll parses an HTML fragment into its top-level element nodes.
// Whitespace-only text between elements is dropped. A fragment with no
// element content yields an empty slice, not an error.
func ParseAll(fragment string) ([]*Element, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}

	var out []*Element
	for _, n := range nodes {
		if el := fromNode(n); el != nil && !el.IsText() {
			out = append(out, el)
		}
	}
	return out, nil
}

// Parse parses an HTML fragment and returns its first top-level
// element, or nil when the fragment contains no element.
func Parse(fragment string) (*Element, error) {
	els, err := ParseAll(fragment)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, nil
	}
	return els[0], nil
}

// fromNode converts an html.Node subtree. Comments, doctypes, and
// whitespace-only text are dropped; nil means the node carried nothing.
func fromNode(n *html.Node) *Element {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return NewText(n.Data)
	case html.ElementNode:
		el := NewElement(n.Data)
		for _, a := range n.Attr {
			el.attrs = append(el.attrs, Attr{Key: a.Key, Val: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromNode(c); child != nil {
				el.Append(child)
			}
		}
		return el
	default:
		return nil
	}
}

// toNode converts the element subtree to html.Node form. When pairs is
// non-nil it records the element backing each created element node.
func (e *Element) toNode(pairs map[*Element]*html.Node) *html.Node {
	if e.IsText() {
		return &html.Node{Type: html.TextNode, Data: e.Text}
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	for _, a := range e.attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if pairs != nil {
		pairs[e] = n
	}
	for _, c := range e.children {
		n.AppendChild(c.toNode(pairs))
	}
	return n
}

// OuterHTML serializes the element subtree.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	// Render only fails on writer errors; strings.Builder has none.
	_ = html.Render(&sb, e.toNode(nil))
	return sb.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for _, c := range e.children {
		_ = html.Render(&sb, c.toNode(nil))
	}
	return sb.String()
}

// Matches reports whether e matches the CSS selector. Invalid
// selectors match nothing.
func (e *Element) Matches(selector string) bool {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return false
	}
	pairs := make(map[*Element]*html.Node)
	e.Root().toNode(pairs)
	n := pairs[e]
	return n != nil && sel.Match(n)
}

// Query returns the descendant elements of e (excluding e itself)
// matching the CSS selector, in document order.
func (e *Element) Query(selector string) []*Element {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil
	}
	pairs := make(map[*Element]*html.Node)
	e.Root().toNode(pairs)

	var out []*Element
	e.walk(func(el *Element) {
		if el == e {
			return
		}
		if n := pairs[el]; n != nil && sel.Match(n) {
			out = append(out, el)
		}
	})
	return out
}

// QueryFirst returns the first descendant matching the selector, or nil.
func (e *Element) QueryFirst(selector string) *Element {
	if els := e.Query(selector); len(els) > 0 {
		return els[0]
	}
	return nil
}

// Closest returns the nearest element, starting from e and walking up
// through its ancestors, that matches the selector. Returns nil when
// no ancestor matches.
func (e *Element) Closest(selector string) *Element {
	for el := e; el != nil; el = el.parent {
		if el.IsText() {
			continue
		}
		if el.Matches(selector) {
			return el
		}
	}
	return nil
}
