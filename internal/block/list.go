package block

import (
	"strings"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// listBehavior implements a single list item, bulleted or numbered.
// Items are blocks in their own right; the containing ul/ol is a
// document-level rendering concern.
type listBehavior struct {
	ordered bool
}

func (l *listBehavior) Type() Type {
	if l.ordered {
		return OrderedList
	}
	return UnorderedList
}

func (l *listBehavior) HandleKey(*Block, key.Event, string) bool { return false }

// HandleEnter declines so the controller splits the item; the split
// continues the list by creating a sibling of the same kind.
func (l *listBehavior) HandleEnter(*Block, key.Event) bool { return false }

func (l *listBehavior) Transform(tb Toolbar) error {
	if l.ordered {
		return tb.OrderedList()
	}
	return tb.UnorderedList()
}

func (l *listBehavior) ToMarkdown(b *Block) string {
	if l.ordered {
		return "1. " + b.Content
	}
	return "- " + b.Content
}

func (l *listBehavior) ToHTML(b *Block) string { return l.Render(b).OuterHTML() }

func (l *listBehavior) Render(b *Block) *dom.Element {
	el := dom.NewElement("li",
		dom.Attr{Key: "class", Val: ClassBlock},
		dom.Attr{Key: AttrType, Val: l.Type().String()},
		dom.Attr{Key: "contenteditable", Val: "true"})
	el.SetTextContent(b.Content)
	return el
}

// bulletMarkers are the markdown triggers for unordered list items.
var bulletMarkers = []string{"* ", "- "}

func canParseBulletMarkdown(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func parseBulletMarkdown(line string) *Block {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			b := NewWithContent(UnorderedList, strings.TrimPrefix(line, m))
			b.Nested = true
			return b
		}
	}
	return nil
}

// numberMarker reports whether line starts with "<digits>. " and
// returns the marker length.
func numberMarker(line string) (int, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(line[i:], ". ") {
		return 0, false
	}
	return i + 2, true
}

func canParseNumberMarkdown(line string) bool {
	_, ok := numberMarker(line)
	return ok
}

func parseNumberMarkdown(line string) *Block {
	n, ok := numberMarker(line)
	if !ok {
		return nil
	}
	b := NewWithContent(OrderedList, line[n:])
	b.Nested = true
	return b
}

func canParseListHTML(t Type, el *dom.Element) bool {
	if el.Tag != "li" {
		return false
	}
	// A checkbox inside the item means task list, not plain list.
	if el.QueryFirst("input[type=checkbox]") != nil {
		return false
	}
	if t == OrderedList {
		return el.Closest("ol") != nil
	}
	return true
}

func parseListHTML(t Type, el *dom.Element) *Block {
	b := New(t)
	b.Content = trimmedText(el)
	b.HTML = el.OuterHTML()
	b.Nested = true
	return b
}
