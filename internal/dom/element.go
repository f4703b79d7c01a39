package dom

import "strings"

// Attr is a single element attribute. Order is preserved.
type Attr struct {
	Key string
	Val string
}

// Element is a node in the surface tree. A text node has an empty Tag
// and its content in Text; an element node has a Tag and may carry
// attributes, children, and event listeners.
type Element struct {
	// Tag is the element name, empty for text nodes.
	Tag string

	// Text is the content of a text node.
	Text string

	attrs     []Attr
	parent    *Element
	children  []*Element
	listeners map[string][]Listener
}

// NewElement creates an element node with the given attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, attrs: attrs}
}

// NewText creates a text node.
func NewText(text string) *Element {
	return &Element{Text: text}
}

// IsText returns true for text nodes.
func (e *Element) IsText() bool {
	return e.Tag == ""
}

// Parent returns the containing element, or nil for a detached root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child nodes in order. The returned slice must
// not be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// Append adds nodes as the last children of e and reparents them.
func (e *Element) Append(nodes ...*Element) *Element {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.parent != nil {
			n.parent.Remove(n)
		}
		n.parent = e
		e.children = append(e.children, n)
	}
	return e
}

// Remove detaches child from e. Unknown children are ignored.
func (e *Element) Remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs[i].Val = val
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(key string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns the attributes in declaration order. The returned
// slice must not be mutated.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	classes, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class attribute if not already present.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	classes, _ := e.Attr("class")
	if classes == "" {
		e.SetAttr("class", name)
		return
	}
	e.SetAttr("class", classes+" "+name)
}

// RemoveClass removes name from the class attribute.
func (e *Element) RemoveClass(name string) {
	classes, ok := e.Attr("class")
	if !ok {
		return
	}
	fields := strings.Fields(classes)
	kept := fields[:0]
	for _, c := range fields {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// TextContent returns the concatenated text of the subtree.
func (e *Element) TextContent() string {
	if e.IsText() {
		return e.Text
	}
	var sb strings.Builder
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	if text != "" {
		e.Append(NewText(text))
	}
}

// Root returns the topmost ancestor of e (possibly e itself).
func (e *Element) Root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// walk visits e and every descendant element node in document order.
func (e *Element) walk(fn func(*Element)) {
	if !e.IsText() {
		fn(e)
	}
	for _, c := range e.children {
		c.walk(fn)
	}
}
