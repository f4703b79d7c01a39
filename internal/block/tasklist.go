package block

import (
	"strings"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// taskListBehavior implements a checkable list item. The checked flag
// lives on the behavior, independent of the item's text content, and is
// discarded when the block converts to another kind.
type taskListBehavior struct {
	checked bool

	// box is the checkbox element from the last Render, kept so a
	// keyboard toggle can update the live surface.
	box *dom.Element
}

func (t *taskListBehavior) Type() Type { return TaskList }

// Checked reports the task's completion state.
func (t *taskListBehavior) Checked() bool { return t.checked }

// HandleKey toggles the checked state on Ctrl+Space.
func (t *taskListBehavior) HandleKey(b *Block, ev key.Event, _ string) bool {
	if !ev.IsCtrlSpace() {
		return false
	}
	t.SetChecked(b, !t.checked)
	return true
}

func (t *taskListBehavior) HandleEnter(*Block, key.Event) bool { return false }

func (t *taskListBehavior) Transform(tb Toolbar) error { return tb.TaskList() }

// SetChecked updates the flag and syncs the rendered checkbox, firing
// its change event so surface listeners observe the toggle.
func (t *taskListBehavior) SetChecked(_ *Block, checked bool) {
	if t.checked == checked {
		return
	}
	t.checked = checked
	if t.box != nil {
		if checked {
			t.box.SetAttr("checked", "")
		} else {
			t.box.RemoveAttr("checked")
		}
		t.box.Fire("change")
	}
}

func (t *taskListBehavior) ToMarkdown(b *Block) string {
	mark := " "
	if t.checked {
		mark = "x"
	}
	return "- [" + mark + "] " + b.Content
}

func (t *taskListBehavior) ToHTML(b *Block) string { return t.Render(b).OuterHTML() }

func (t *taskListBehavior) Render(b *Block) *dom.Element {
	li := dom.NewElement("li",
		dom.Attr{Key: "class", Val: ClassTaskItem},
		dom.Attr{Key: AttrType, Val: TaskList.String()})

	box := dom.NewElement("input", dom.Attr{Key: "type", Val: "checkbox"})
	if t.checked {
		box.SetAttr("checked", "")
	}
	// Clicking the box flips state without going through HandleKey.
	box.On("change", func(ev dom.Event) {
		_, t.checked = ev.Target.Attr("checked")
	})
	t.box = box

	text := dom.NewElement("span", dom.Attr{Key: "contenteditable", Val: "true"})
	text.SetTextContent(b.Content)

	li.Append(box, text)
	return li
}

// taskMarkers are the markdown triggers for task-list items, longest
// first so prefix matching is unambiguous.
var taskMarkers = []string{
	"- [ ]", "- [x]", "- [X]", "- []",
	"[ ]", "[x]", "[X]", "[]",
}

func canParseTaskMarkdown(line string) bool {
	for _, m := range taskMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func parseTaskMarkdown(line string) *Block {
	for _, m := range taskMarkers {
		if !strings.HasPrefix(line, m) {
			continue
		}
		b := New(TaskList)
		b.Nested = true
		b.Content = strings.TrimLeft(strings.TrimPrefix(line, m), " ")
		if strings.ContainsAny(m, "xX") {
			b.behavior.(*taskListBehavior).checked = true
		}
		return b
	}
	return nil
}

func canParseTaskHTML(el *dom.Element) bool {
	return el.Tag == "li" && el.QueryFirst("input[type=checkbox]") != nil
}

func parseTaskHTML(el *dom.Element) *Block {
	b := New(TaskList)
	b.Nested = true
	b.Content = trimmedText(el)
	b.HTML = el.OuterHTML()
	if box := el.QueryFirst("input[type=checkbox]"); box != nil {
		if _, checked := box.Attr("checked"); checked {
			b.behavior.(*taskListBehavior).checked = true
		}
	}
	return b
}

// SetTaskChecked sets the checked flag of a task-list block, syncing
// the rendered checkbox. A no-op for any other kind.
func SetTaskChecked(b *Block, checked bool) {
	if t, ok := b.Behavior().(*taskListBehavior); ok {
		t.SetChecked(b, checked)
	}
}

// TaskChecked reports the checked flag of a task-list block. False for
// any other kind.
func TaskChecked(b *Block) bool {
	if t, ok := b.Behavior().(*taskListBehavior); ok {
		return t.checked
	}
	return false
}
