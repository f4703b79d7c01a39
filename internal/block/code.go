package block

import (
	"strings"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// codeBehavior implements fenced code blocks. Tab is always consumed
// so focus never leaves the block; Enter is never intercepted so the
// surface's native newline insertion applies inside the fence.
type codeBehavior struct{}

func (codeBehavior) Type() Type { return Code }

// HandleKey consumes Tab regardless of the current text (including
// empty) and requests a literal tab insertion from the surface.
func (codeBehavior) HandleKey(_ *Block, ev key.Event, _ string) bool {
	return ev.Key == key.KeyTab
}

func (codeBehavior) HandleEnter(*Block, key.Event) bool { return false }

func (codeBehavior) Transform(tb Toolbar) error { return tb.Code() }

func (codeBehavior) ToMarkdown(b *Block) string {
	return "```\n" + b.Content + "\n```"
}

func (c codeBehavior) ToHTML(b *Block) string { return c.Render(b).OuterHTML() }

func (codeBehavior) Render(b *Block) *dom.Element {
	pre := dom.NewElement("pre",
		dom.Attr{Key: "class", Val: ClassBlock},
		dom.Attr{Key: AttrType, Val: Code.String()})
	code := dom.NewElement("code", dom.Attr{Key: "contenteditable", Val: "true"})
	code.SetTextContent(b.Content)
	pre.Append(code)
	return pre
}

// codeFences are the markdown triggers for code blocks.
var codeFences = []string{"```", "~~~"}

func canParseCodeMarkdown(text string) bool {
	for _, fence := range codeFences {
		if strings.HasPrefix(text, fence) {
			return true
		}
	}
	return false
}

// parseCodeMarkdown accepts a complete fenced block. The opening fence
// line is dropped, as is a matching closing fence when present.
func parseCodeMarkdown(text string) *Block {
	if !canParseCodeMarkdown(text) {
		return nil
	}
	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && canParseCodeMarkdown(lines[n-1]) {
		lines = lines[:n-1]
	}
	return NewWithContent(Code, strings.Join(lines, "\n"))
}

func canParseCodeHTML(el *dom.Element) bool {
	return el.Tag == "pre" || el.Tag == "code"
}

func parseCodeHTML(el *dom.Element) *Block {
	b := New(Code)
	// Code content keeps its whitespace; only outer padding from the
	// markup itself is trimmed.
	b.Content = strings.Trim(el.TextContent(), "\n")
	b.HTML = el.OuterHTML()
	return b
}
