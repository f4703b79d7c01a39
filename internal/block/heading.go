package block

import (
	"strconv"
	"strings"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// headingBehavior implements H1 through H3. The level is fixed at
// construction; changing heading depth is a type conversion.
type headingBehavior struct {
	level int
}

func (h *headingBehavior) Type() Type { return H1 + Type(h.level-1) }

func (h *headingBehavior) HandleKey(*Block, key.Event, string) bool { return false }

func (h *headingBehavior) HandleEnter(*Block, key.Event) bool { return false }

func (h *headingBehavior) Transform(tb Toolbar) error {
	switch h.level {
	case 1:
		return tb.H1()
	case 2:
		return tb.H2()
	default:
		return tb.H3()
	}
}

func (h *headingBehavior) ToMarkdown(b *Block) string {
	return strings.Repeat("#", h.level) + " " + b.Content
}

func (h *headingBehavior) ToHTML(b *Block) string { return h.Render(b).OuterHTML() }

func (h *headingBehavior) Render(b *Block) *dom.Element {
	el := dom.NewElement("h"+strconv.Itoa(h.level),
		dom.Attr{Key: "class", Val: ClassBlock},
		dom.Attr{Key: AttrType, Val: h.Type().String()},
		dom.Attr{Key: "contenteditable", Val: "true"})
	el.SetTextContent(b.Content)
	return el
}

// headingPrefix returns the markdown trigger for a heading type.
func headingPrefix(t Type) string {
	return strings.Repeat("#", int(t-H1)+1) + " "
}

func canParseHeadingMarkdown(t Type, line string) bool {
	// The trailing space in the prefix keeps "## x" from matching h1.
	return strings.HasPrefix(line, headingPrefix(t))
}

func parseHeadingMarkdown(t Type, line string) *Block {
	if !canParseHeadingMarkdown(t, line) {
		return nil
	}
	return NewWithContent(t, strings.TrimPrefix(line, headingPrefix(t)))
}

func canParseHeadingHTML(t Type, el *dom.Element) bool {
	return el.Tag == "h"+strconv.Itoa(int(t-H1)+1)
}

func parseHeadingHTML(t Type, el *dom.Element) *Block {
	b := New(t)
	b.Content = trimmedText(el)
	b.HTML = el.OuterHTML()
	return b
}
