package block

import (
	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// paragraphBehavior is the default block kind. It owns no keys and no
// toolbar command; everything falls through to the surface's native
// editing.
type paragraphBehavior struct{}

func (paragraphBehavior) Type() Type { return Paragraph }

func (paragraphBehavior) HandleKey(*Block, key.Event, string) bool { return false }

func (paragraphBehavior) HandleEnter(*Block, key.Event) bool { return false }

func (paragraphBehavior) Transform(Toolbar) error { return nil }

func (paragraphBehavior) ToMarkdown(b *Block) string { return b.Content }

func (p paragraphBehavior) ToHTML(b *Block) string { return p.Render(b).OuterHTML() }

func (paragraphBehavior) Render(b *Block) *dom.Element {
	el := dom.NewElement("p",
		dom.Attr{Key: "class", Val: ClassBlock},
		dom.Attr{Key: AttrType, Val: Paragraph.String()},
		dom.Attr{Key: "contenteditable", Val: "true"})
	el.SetTextContent(b.Content)
	return el
}

func canParseParagraphHTML(el *dom.Element) bool {
	return el.Tag == "p" || el.Tag == "div"
}

func parseParagraphHTML(el *dom.Element) *Block {
	b := New(Paragraph)
	b.Content = trimmedText(el)
	b.HTML = el.OuterHTML()
	return b
}
