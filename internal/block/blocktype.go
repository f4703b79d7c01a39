package block

// Type discriminates block kinds. Declaration order is also the order
// dispatchers try kind-specific parsers in, so more specific syntaxes
// (task list) come before the ones they shadow (unordered list).
type Type uint8

const (
	// Paragraph is the default block kind.
	Paragraph Type = iota
	// H1 is a level-1 heading.
	H1
	// H2 is a level-2 heading.
	H2
	// H3 is a level-3 heading.
	H3
	// Code is a fenced code block.
	Code
	// TaskList is a checkable list item.
	TaskList
	// UnorderedList is a bulleted list item.
	UnorderedList
	// OrderedList is a numbered list item.
	OrderedList
	// Table is a pipe-delimited table.
	Table
)

// types lists every kind in dispatch order.
var types = []Type{Paragraph, H1, H2, H3, Code, TaskList, UnorderedList, OrderedList, Table}

// String returns the wire tag used in data-block-type attributes.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case H1:
		return "h1"
	case H2:
		return "h2"
	case H3:
		return "h3"
	case Code:
		return "code"
	case TaskList:
		return "task-list"
	case UnorderedList:
		return "unordered-list"
	case OrderedList:
		return "ordered-list"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// TypeFromString resolves a wire tag back to its Type.
func TypeFromString(s string) (Type, bool) {
	for _, t := range types {
		if t.String() == s {
			return t, true
		}
	}
	return Paragraph, false
}

// IsListItem reports whether blocks of this kind render as list items
// inside a containing ul/ol.
func (t Type) IsListItem() bool {
	return t == TaskList || t == UnorderedList || t == OrderedList
}
