package editor

import (
	"strings"

	"github.com/dshills/blockdown/internal/block"
	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// HandleKey routes a key event to the block owning the target element.
// The caret offset is in grapheme clusters within the block's content.
// It returns true when the event was consumed, either by the block's
// behavior or by a structural operation; false means the surface's
// default editing applies.
func (e *Editor) HandleKey(target *dom.Element, ev key.Event, caret int) bool {
	b := e.BlockFor(target)
	if b == nil {
		return false
	}
	e.SetCurrent(b)

	if ev.Key == key.KeyEnter && ev.Modifiers == key.ModNone {
		return e.handleEnter(b, ev, caret)
	}

	handled := b.HandleKey(ev, b.Content)
	if !handled {
		return false
	}

	// A code block consuming Tab is a request for a literal tab
	// character at the caret.
	if b.Type() == block.Code && ev.Key == key.KeyTab {
		left, right := block.SplitContent(b.Content, caret)
		b.Content = left + "\t" + right
	}
	e.renderBlock(b)
	return true
}

// handleEnter gives the behavior first refusal, then applies the
// controller's default: a literal newline inside code blocks, a split
// everywhere else.
func (e *Editor) handleEnter(b *block.Block, ev key.Event, caret int) bool {
	if b.HandleEnter(ev) {
		e.renderBlock(b)
		return true
	}

	if b.Type() == block.Code {
		// Native newline insertion applies inside code.
		return false
	}

	if _, err := e.Split(caret); err != nil {
		e.log.Error("split failed: %v", err)
		return false
	}
	return true
}

// ApplyTrigger converts the current block when its content starts with
// a markdown trigger for another kind, consuming the trigger prefix.
// Surfaces call this after each text mutation. Reports whether a
// conversion happened.
func (e *Editor) ApplyTrigger() bool {
	cur := e.current
	if cur == nil {
		return false
	}

	t, ok := block.TriggerType(cur.Content)
	if !ok || t == cur.Type() {
		return false
	}

	content := cur.Content
	var matched string
	for _, trigger := range block.MarkdownTriggers(t) {
		if strings.HasPrefix(content, trigger) {
			matched = trigger
			content = strings.TrimLeft(strings.TrimPrefix(content, trigger), " ")
			break
		}
	}

	cur.Content = content
	cur.ConvertTo(t)
	if t == block.TaskList {
		block.SetTaskChecked(cur, strings.ContainsAny(matched, "xX"))
	}
	if t.IsListItem() {
		cur.Nested = true
	}
	e.renderBlock(cur)
	e.log.Debug("trigger converted block %s to %s", cur.ID(), t)
	return true
}
