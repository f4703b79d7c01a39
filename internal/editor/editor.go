package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/blockdown/internal/block"
	"github.com/dshills/blockdown/internal/dom"
)

// classCurrent marks the rendered element of the current block.
const classCurrent = "current"

// Editor owns the document's block sequence and current-block binding.
type Editor struct {
	blocks  []*block.Block
	current *block.Block

	// elements maps block identity to its rendered element; owners is
	// the reverse map used to resolve input targets. Both are updated
	// on every insert, remove, and re-render.
	elements map[uuid.UUID]*dom.Element
	owners   map[*dom.Element]*block.Block

	// frame holds tasks deferred to the next paint, focus moves only.
	frame []func()

	// defaultKind is the kind of the initial block and of the block an
	// empty document falls back to. The zero value is Paragraph.
	defaultKind block.Type

	toolbar block.Toolbar
	log     *Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithToolbar sets the external toolbar command sink.
func WithToolbar(tb block.Toolbar) Option {
	return func(e *Editor) { e.toolbar = tb }
}

// WithLogger sets the editor's logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithDefaultKind sets the kind used for the initial block and for the
// empty-document fallbacks.
func WithDefaultKind(t block.Type) Option {
	return func(e *Editor) { e.defaultKind = t }
}

// New creates an editor holding a single empty block of the default
// kind (paragraph unless WithDefaultKind says otherwise), bound as the
// current block.
func New(opts ...Option) *Editor {
	e := &Editor{
		elements: make(map[uuid.UUID]*dom.Element),
		owners:   make(map[*dom.Element]*block.Block),
		toolbar:  block.NopToolbar{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = NewLogger(LogLevelInfo, nil)
	}

	first := block.New(e.defaultKind)
	e.blocks = []*block.Block{first}
	e.renderBlock(first)
	e.SetCurrent(first)
	return e
}

// Blocks returns the document sequence in order. The returned slice
// must not be mutated.
func (e *Editor) Blocks() []*block.Block {
	return e.blocks
}

// Current returns the block keyboard and toolbar actions target next.
func (e *Editor) Current() *block.Block {
	return e.current
}

// ElementFor returns the rendered element for a block, or nil for a
// block the editor does not hold.
func (e *Editor) ElementFor(b *block.Block) *dom.Element {
	if b == nil {
		return nil
	}
	return e.elements[b.ID()]
}

// BlockFor resolves an input target to its owning block by walking the
// target and its ancestors through the identity map. Nil when the
// element belongs to no block.
func (e *Editor) BlockFor(el *dom.Element) *block.Block {
	for ; el != nil; el = el.Parent() {
		if b, ok := e.owners[el]; ok {
			return b
		}
	}
	return nil
}

// SetCurrent rebinds the current-block pointer. Rebinding to the block
// already current is a cheap no-op with no observable side effect.
// Blocks not in the sequence are refused.
func (e *Editor) SetCurrent(b *block.Block) {
	if b == e.current {
		return
	}
	if b != nil && e.indexOf(b) < 0 {
		e.log.Warn("refusing to bind current to a block outside the sequence")
		return
	}

	if prev := e.ElementFor(e.current); prev != nil {
		prev.RemoveClass(classCurrent)
	}
	e.current = b
	if el := e.ElementFor(b); el != nil {
		el.AddClass(classCurrent)
	}
	if b != nil {
		e.log.Debug("current block -> %s (%s)", b.ID(), b.Type())
	}
}

// indexOf returns b's position in the sequence, -1 when absent.
func (e *Editor) indexOf(b *block.Block) int {
	for i, x := range e.blocks {
		if x == b {
			return i
		}
	}
	return -1
}

// renderBlock renders b and refreshes both identity maps, replacing
// any stale element the block had.
func (e *Editor) renderBlock(b *block.Block) *dom.Element {
	if old := e.elements[b.ID()]; old != nil {
		delete(e.owners, old)
	}
	el := b.Render()
	if b == e.current {
		el.AddClass(classCurrent)
	}
	e.elements[b.ID()] = el
	e.owners[el] = b
	return el
}

// dropBlock removes b's rendered element from the identity maps.
func (e *Editor) dropBlock(b *block.Block) {
	if el := e.elements[b.ID()]; el != nil {
		delete(e.owners, el)
	}
	delete(e.elements, b.ID())
}

// Update re-renders every block and refreshes the identity maps. It is
// the visual refresh signal behaviors request after a state change.
func (e *Editor) Update() {
	for _, b := range e.blocks {
		e.renderBlock(b)
	}
}

// InsertAfter creates a block of kind t immediately after the given
// block and binds current to the new block, never the survivor it was
// inserted after. Focus placement is deferred one frame; the sequence
// and binding are already correct when this returns.
func (e *Editor) InsertAfter(after *block.Block, t block.Type) (*block.Block, error) {
	i := e.indexOf(after)
	if i < 0 {
		return nil, NewOperationError("insert", t.String(), ErrBlockNotFound)
	}

	nb := block.New(t)
	e.blocks = append(e.blocks[:i+1], append([]*block.Block{nb}, e.blocks[i+1:]...)...)
	e.renderBlock(nb)
	e.SetCurrent(nb)
	e.scheduleFocus(nb)
	e.log.Debug("inserted %s block after index %d", t, i)
	return nb, nil
}

// Split divides the current block at the caret offset (in grapheme
// clusters). The text after the caret moves into a new block inserted
// immediately after, and current is rebound to the new block.
func (e *Editor) Split(caret int) (*block.Block, error) {
	cur := e.current
	if cur == nil {
		return nil, NewOperationError("split", "", ErrNoCurrentBlock)
	}

	left, right := block.SplitContent(cur.Content, caret)
	cur.Content = left
	e.renderBlock(cur)

	nb, err := e.InsertAfter(cur, splitKind(cur.Type()))
	if err != nil {
		return nil, err
	}
	nb.Content = right
	nb.Nested = cur.Nested && nb.Type().IsListItem()
	e.renderBlock(nb)
	return nb, nil
}

// splitKind decides what kind a split produces: list items continue
// the list, headings fall back to a paragraph, everything else splits
// into its own kind.
func splitKind(t block.Type) block.Type {
	switch {
	case t.IsListItem():
		return t
	case t == block.H1 || t == block.H2 || t == block.H3:
		return block.Paragraph
	default:
		return t
	}
}

// MergeWithPrevious appends the current block's content to its
// predecessor, removes the current block from the sequence, and binds
// current to the predecessor. The Backspace-at-start operation.
func (e *Editor) MergeWithPrevious() error {
	cur := e.current
	if cur == nil {
		return NewOperationError("merge", "", ErrNoCurrentBlock)
	}
	i := e.indexOf(cur)
	if i < 0 {
		return NewOperationError("merge", cur.ID().String(), ErrBlockNotFound)
	}
	if i == 0 {
		return NewOperationError("merge", cur.ID().String(), ErrFirstBlock)
	}

	prev := e.blocks[i-1]
	prev.Content += cur.Content
	e.blocks = append(e.blocks[:i], e.blocks[i+1:]...)
	e.dropBlock(cur)
	e.renderBlock(prev)
	e.SetCurrent(prev)
	e.log.Debug("merged block %s into predecessor", cur.ID())
	return nil
}

// DeleteAll collapses the document to a single empty paragraph and
// binds current to the survivor. The select-all-and-delete operation.
func (e *Editor) DeleteAll() *block.Block {
	for _, b := range e.blocks {
		e.dropBlock(b)
	}

	survivor := block.New(block.Paragraph)
	e.blocks = []*block.Block{survivor}
	e.renderBlock(survivor)
	e.SetCurrent(survivor)
	e.log.Debug("deleted all blocks; fresh paragraph bound")
	return survivor
}

// ConvertCurrent swaps the current block's behavior to kind t in place.
// The handle's identity, and therefore its position in the sequence, is
// unchanged. The toolbar command for t is invoked exactly once.
func (e *Editor) ConvertCurrent(t block.Type) error {
	cur := e.current
	if cur == nil {
		return NewOperationError("convert", t.String(), ErrNoCurrentBlock)
	}

	cur.ConvertTo(t)
	if err := cur.Transform(e.toolbar); err != nil {
		e.log.Error("toolbar command for %s failed: %v", t, err)
		return NewOperationError("convert", t.String(), err)
	}
	e.renderBlock(cur)
	e.log.Debug("converted block %s to %s", cur.ID(), t)
	return nil
}
