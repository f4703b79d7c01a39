package editor

import (
	"fmt"

	"github.com/dshills/blockdown/internal/block"
	"github.com/dshills/blockdown/internal/dom"
)

// FromHTML replaces the document with blocks parsed from an HTML
// fragment. List containers (ul/ol) are unwrapped into one block per
// item; every other top-level element resolves through the block
// fragment dispatcher. The current block is bound to the first parsed
// block, or to a fresh block of the default kind for empty input.
func (e *Editor) FromHTML(fragment string) error {
	els, err := dom.ParseAll(fragment)
	if err != nil {
		return parseError("parse-html", err)
	}

	for _, b := range e.blocks {
		e.dropBlock(b)
	}
	e.blocks = nil
	e.current = nil

	for _, el := range els {
		if el.Tag == "ul" || el.Tag == "ol" {
			for _, li := range el.Query("li") {
				e.appendParsed(block.ParseFragment(li))
			}
			continue
		}
		e.appendParsed(block.ParseFragment(el))
	}

	if len(e.blocks) == 0 {
		e.blocks = []*block.Block{block.New(e.defaultKind)}
		e.renderBlock(e.blocks[0])
	}
	e.SetCurrent(e.blocks[0])
	return nil
}

// HTML serializes the document by assembling the block elements under
// a detached container and emitting its inner HTML. Runs of adjacent
// list items are wrapped in a shared container: ul for bullet and task
// items, ol for numbered items.
func (e *Editor) HTML() string {
	root := dom.NewElement("div")
	for i := 0; i < len(e.blocks); i++ {
		b := e.blocks[i]
		if !b.Type().IsListItem() {
			if el, err := dom.Parse(b.ToHTML()); err == nil && el != nil {
				root.Append(el)
			}
			continue
		}

		container := "ul"
		if b.Type() == block.OrderedList {
			container = "ol"
		}
		wrap := dom.NewElement(container)
		for ; i < len(e.blocks) && sameListContainer(e.blocks[i].Type(), container); i++ {
			item, err := dom.Parse(e.blocks[i].ToHTML())
			if err != nil || item == nil {
				continue
			}
			wrap.Append(item)
		}
		i--
		root.Append(wrap)
	}
	return root.InnerHTML()
}

// parseError tags a failed fragment parse with the package sentinel so
// callers can test for it with errors.Is.
func parseError(op string, err error) error {
	return NewOperationError(op, "", fmt.Errorf("%w: %v", ErrParse, err))
}

// sameListContainer reports whether kind t renders inside the given
// list container tag.
func sameListContainer(t block.Type, container string) bool {
	switch t {
	case block.OrderedList:
		return container == "ol"
	case block.UnorderedList, block.TaskList:
		return container == "ul"
	default:
		return false
	}
}
