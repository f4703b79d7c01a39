package block

import (
	"strings"

	"github.com/dshills/blockdown/internal/dom"
)

// trimmedText returns the element's text content without the
// whitespace padding pretty-printed markup carries.
func trimmedText(el *dom.Element) string {
	return strings.TrimSpace(el.TextContent())
}

// CanParseHTML reports whether el matches kind t's structure, either by
// its data-block-type attribute or by feature sniffing.
func CanParseHTML(t Type, el *dom.Element) bool {
	if el == nil {
		return false
	}
	if tag, ok := el.Attr(AttrType); ok {
		declared, known := TypeFromString(tag)
		return known && declared == t
	}
	switch t {
	case H1, H2, H3:
		return canParseHeadingHTML(t, el)
	case Code:
		return canParseCodeHTML(el)
	case TaskList:
		return canParseTaskHTML(el)
	case UnorderedList, OrderedList:
		return canParseListHTML(t, el)
	case Table:
		return canParseTableHTML(el)
	case Paragraph:
		return canParseParagraphHTML(el)
	default:
		return false
	}
}

// ParseHTML constructs a populated block from an element matching kind
// t, or nil when it does not match.
func ParseHTML(t Type, el *dom.Element) *Block {
	if !CanParseHTML(t, el) {
		return nil
	}
	switch t {
	case H1, H2, H3:
		return parseHeadingHTML(t, el)
	case Code:
		return parseCodeHTML(el)
	case TaskList:
		return parseTaskHTML(el)
	case UnorderedList, OrderedList:
		return parseListHTML(t, el)
	case Table:
		return parseTableHTML(el)
	case Paragraph:
		return parseParagraphHTML(el)
	default:
		return nil
	}
}

// fragmentKinds is the sniffing order when no data-block-type
// attribute is present.
var fragmentKinds = []Type{H1, H2, H3, Code, TaskList, OrderedList, UnorderedList, Table}

// ParseFragment resolves an element to a block. An explicit
// data-block-type attribute is authoritative; otherwise structural
// sniffing applies, and anything unrecognized becomes a paragraph
// carrying the element's text. Returns nil only for a nil element.
func ParseFragment(el *dom.Element) *Block {
	if el == nil {
		return nil
	}
	if tag, ok := el.Attr(AttrType); ok {
		if t, known := TypeFromString(tag); known {
			if b := ParseHTML(t, el); b != nil {
				return b
			}
		}
	}
	for _, t := range fragmentKinds {
		if b := ParseHTML(t, el); b != nil {
			return b
		}
	}
	return parseParagraphHTML(el)
}
