package block

import (
	"testing"

	"github.com/dshills/blockdown/internal/input/key"
)

func enterEvent() key.Event {
	return key.NewSpecialEvent(key.KeyEnter, key.ModNone)
}

func TestNewBlockTypeMatchesBehavior(t *testing.T) {
	for _, typ := range types {
		b := New(typ)
		if b.Behavior() == nil {
			t.Fatalf("New(%v) has no behavior", typ)
		}
		if b.Type() != typ {
			t.Errorf("New(%v).Type() = %v", typ, b.Type())
		}
		if b.Behavior().Type() != typ {
			t.Errorf("behavior type = %v, want %v", b.Behavior().Type(), typ)
		}
	}
}

func TestConvertToPreservesIdentityAndContent(t *testing.T) {
	b := NewWithContent(Paragraph, "Some text")
	b.Nested = true
	id := b.ID()

	b.ConvertTo(H1)

	if b.ID() != id {
		t.Errorf("identity changed across conversion")
	}
	if b.Type() != H1 {
		t.Errorf("type = %v, want H1", b.Type())
	}
	if b.Content != "Some text" {
		t.Errorf("content = %q, want preserved", b.Content)
	}
	if !b.Nested {
		t.Errorf("nested flag lost in conversion")
	}
}

func TestConvertToSameTypeKeepsBehavior(t *testing.T) {
	b := ParseMarkdown(TaskList, "- [x] done")
	if b == nil {
		t.Fatal("parse failed")
	}
	before := b.Behavior()

	b.ConvertTo(TaskList)

	if b.Behavior() != before {
		t.Errorf("converting to the current type replaced the behavior")
	}
	if !TaskChecked(b) {
		t.Errorf("checked state lost on no-op conversion")
	}
}

func TestConvertToDiscardsKindState(t *testing.T) {
	b := ParseMarkdown(TaskList, "- [x] done")
	if b == nil {
		t.Fatal("parse failed")
	}

	b.ConvertTo(Paragraph)
	b.ConvertTo(TaskList)

	if TaskChecked(b) {
		t.Errorf("checked state survived a round trip through another type")
	}
}

func TestDetachedBlockIsHarmless(t *testing.T) {
	// A handle without a behavior must never crash the input pipeline.
	b := &Block{Content: "orphan"}

	if b.HandleKey(key.NewSpecialEvent(key.KeyTab, key.ModNone), "") {
		t.Errorf("behaviorless block claimed a key")
	}
	if b.HandleEnter(enterEvent()) {
		t.Errorf("behaviorless block claimed Enter")
	}
	if err := b.Transform(NopToolbar{}); err != nil {
		t.Errorf("Transform = %v, want silent no-op", err)
	}
	if got := b.ToMarkdown(); got != "orphan" {
		t.Errorf("ToMarkdown = %q, want raw content", got)
	}
	if el := b.Render(); el == nil {
		t.Errorf("Render returned nil element")
	}
}

// recordingToolbar counts command invocations per kind.
type recordingToolbar struct {
	calls map[string]int
}

func newRecordingToolbar() *recordingToolbar {
	return &recordingToolbar{calls: make(map[string]int)}
}

func (r *recordingToolbar) H1() error            { r.calls["h1"]++; return nil }
func (r *recordingToolbar) H2() error            { r.calls["h2"]++; return nil }
func (r *recordingToolbar) H3() error            { r.calls["h3"]++; return nil }
func (r *recordingToolbar) Code() error          { r.calls["code"]++; return nil }
func (r *recordingToolbar) UnorderedList() error { r.calls["unordered-list"]++; return nil }
func (r *recordingToolbar) OrderedList() error   { r.calls["ordered-list"]++; return nil }
func (r *recordingToolbar) TaskList() error      { r.calls["task-list"]++; return nil }
func (r *recordingToolbar) Table() error         { r.calls["table"]++; return nil }

func (r *recordingToolbar) Command(name string) error { r.calls[name]++; return nil }

func TestTransformInvokesToolbarOnce(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{H1, "h1"},
		{H3, "h3"},
		{Code, "code"},
		{UnorderedList, "unordered-list"},
		{TaskList, "task-list"},
		{Table, "table"},
	}

	for _, tt := range tests {
		tb := newRecordingToolbar()
		b := New(tt.typ)
		if err := b.Transform(tb); err != nil {
			t.Errorf("Transform(%v) = %v", tt.typ, err)
		}
		if tb.calls[tt.want] != 1 {
			t.Errorf("Transform(%v) invoked %q %d times, want once", tt.typ, tt.want, tb.calls[tt.want])
		}
		if len(tb.calls) != 1 {
			t.Errorf("Transform(%v) touched extra commands: %v", tt.typ, tb.calls)
		}
	}
}

func TestParagraphTransformIsNoOp(t *testing.T) {
	tb := newRecordingToolbar()
	b := New(Paragraph)
	if err := b.Transform(tb); err != nil {
		t.Errorf("Transform = %v", err)
	}
	if len(tb.calls) != 0 {
		t.Errorf("paragraph transform invoked commands: %v", tb.calls)
	}
}

func TestRenderRecordsHTML(t *testing.T) {
	b := NewWithContent(H2, "Section")
	el := b.Render()

	if b.HTML == "" {
		t.Errorf("Render did not record HTML on the handle")
	}
	if b.HTML != el.OuterHTML() {
		t.Errorf("recorded HTML differs from the rendered element")
	}
	if !el.HasClass(ClassBlock) {
		t.Errorf("rendered block lacks the %q class", ClassBlock)
	}
	if typ, _ := el.Attr(AttrType); typ != "h2" {
		t.Errorf("data-block-type = %q, want h2", typ)
	}
}
