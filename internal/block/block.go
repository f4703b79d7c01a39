package block

import (
	"github.com/google/uuid"

	"github.com/dshills/blockdown/internal/dom"
	"github.com/dshills/blockdown/internal/input/key"
)

// Rendered-block contract shared with the editor and external toolbars.
const (
	// AttrType is the attribute naming a rendered block's kind.
	AttrType = "data-block-type"

	// ClassBlock marks a generic rendered block element.
	ClassBlock = "block"

	// ClassTaskItem marks a rendered task-list item.
	ClassTaskItem = "task-list-item"
)

// Toolbar is the external command sink a block invokes when its type is
// converted explicitly. Each command is zero-argument; its effect on
// selection and formatting is opaque to the block model.
type Toolbar interface {
	H1() error
	H2() error
	H3() error
	Code() error
	UnorderedList() error
	OrderedList() error
	TaskList() error
	Table() error

	// Command invokes an arbitrary named toolbar command.
	Command(name string) error
}

// NopToolbar is a Toolbar that does nothing. Useful for tests and
// headless conversion.
type NopToolbar struct{}

func (NopToolbar) H1() error            { return nil }
func (NopToolbar) H2() error            { return nil }
func (NopToolbar) H3() error            { return nil }
func (NopToolbar) Code() error          { return nil }
func (NopToolbar) UnorderedList() error { return nil }
func (NopToolbar) OrderedList() error   { return nil }
func (NopToolbar) TaskList() error      { return nil }
func (NopToolbar) Table() error         { return nil }

func (NopToolbar) Command(string) error { return nil }

// Behavior is the capability set every block kind implements. Methods
// receive the owning block; a behavior holds no state of its own beyond
// the kind-specific extras it must persist across calls (table rows,
// task-list checked flag).
type Behavior interface {
	// Type returns the kind this behavior implements.
	Type() Type

	// HandleKey processes a key press. It returns true only when the
	// behavior consumed the key; it must not touch document structure
	// for keys it does not own.
	HandleKey(b *Block, ev key.Event, currentText string) bool

	// HandleEnter governs whether Enter is intercepted.
	HandleEnter(b *Block, ev key.Event) bool

	// Transform invokes the toolbar command for this kind, if any.
	Transform(tb Toolbar) error

	// ToMarkdown serializes the block's current state.
	ToMarkdown(b *Block) string

	// ToHTML serializes the block's current state as an HTML fragment.
	ToHTML(b *Block) string

	// Render builds the live editable element for the block, wiring
	// kind-specific listeners.
	Render(b *Block) *dom.Element
}

// Block is the stable handle a document sequence holds. It owns exactly
// one Behavior matching its current type; the pairing is replaced
// atomically by ConvertTo and can never be observed mismatched.
type Block struct {
	id       uuid.UUID
	behavior Behavior

	// Content is the logical markdown-ish text, independent of rendering.
	Content string

	// HTML is the last-known rendered fragment for this block.
	HTML string

	// Nested marks a block that is a child of a containing structural
	// block, e.g. a list item inside a list.
	Nested bool
}

// New creates a block of the given kind with a fresh identity.
func New(t Type) *Block {
	return &Block{id: uuid.New(), behavior: newBehavior(t)}
}

// NewWithContent creates a block seeded with content.
func NewWithContent(t Type, content string) *Block {
	b := New(t)
	b.Content = content
	return b
}

// ID returns the block's stable identity.
func (b *Block) ID() uuid.UUID {
	return b.id
}

// Type returns the block's current kind.
func (b *Block) Type() Type {
	if b.behavior == nil {
		return Paragraph
	}
	return b.behavior.Type()
}

// Behavior returns the behavior currently bound to the block.
func (b *Block) Behavior() Behavior {
	return b.behavior
}

// ConvertTo replaces the block's behavior with a fresh instance of the
// requested kind. Identity, content, html, and nesting are preserved;
// the old behavior's kind-specific state is discarded. Converting to
// the current kind is a no-op.
func (b *Block) ConvertTo(t Type) {
	if b.behavior != nil && b.behavior.Type() == t {
		return
	}
	b.behavior = newBehavior(t)
}

// HandleKey delegates to the behavior. A block with no behavior
// reports the key unhandled so the input pipeline never fails on a
// partially constructed handle.
func (b *Block) HandleKey(ev key.Event, currentText string) bool {
	if b.behavior == nil {
		return false
	}
	return b.behavior.HandleKey(b, ev, currentText)
}

// HandleEnter delegates to the behavior; unhandled without one.
func (b *Block) HandleEnter(ev key.Event) bool {
	if b.behavior == nil {
		return false
	}
	return b.behavior.HandleEnter(b, ev)
}

// Transform invokes the toolbar command for the block's kind. Silent
// no-op when the block has no behavior or no toolbar is supplied.
func (b *Block) Transform(tb Toolbar) error {
	if b.behavior == nil || tb == nil {
		return nil
	}
	return b.behavior.Transform(tb)
}

// ToMarkdown serializes the block. Without a behavior the raw content
// is returned unchanged.
func (b *Block) ToMarkdown() string {
	if b.behavior == nil {
		return b.Content
	}
	return b.behavior.ToMarkdown(b)
}

// ToHTML serializes the block as an HTML fragment.
func (b *Block) ToHTML() string {
	if b.behavior == nil {
		return b.HTML
	}
	return b.behavior.ToHTML(b)
}

// Render builds the live element for the block and records its outer
// HTML on the handle.
func (b *Block) Render() *dom.Element {
	var el *dom.Element
	if b.behavior == nil {
		el = dom.NewElement("p",
			dom.Attr{Key: "class", Val: ClassBlock},
			dom.Attr{Key: AttrType, Val: Paragraph.String()},
			dom.Attr{Key: "contenteditable", Val: "true"})
		el.SetTextContent(b.Content)
	} else {
		el = b.behavior.Render(b)
	}
	b.HTML = el.OuterHTML()
	return el
}

// newBehavior constructs the behavior for a kind. The single switch at
// the handle boundary is the only place kinds are dispatched on.
func newBehavior(t Type) Behavior {
	switch t {
	case H1, H2, H3:
		return &headingBehavior{level: int(t-H1) + 1}
	case Code:
		return &codeBehavior{}
	case TaskList:
		return &taskListBehavior{}
	case UnorderedList:
		return &listBehavior{}
	case OrderedList:
		return &listBehavior{ordered: true}
	case Table:
		return &tableBehavior{}
	default:
		return &paragraphBehavior{}
	}
}
