package dom

import "testing"

func TestAppendReparents(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("span")
	parent.Append(child)

	if child.Parent() != parent {
		t.Fatalf("child parent = %v, want original parent", child.Parent())
	}

	other := NewElement("div")
	other.Append(child)

	if child.Parent() != other {
		t.Errorf("child parent = %v, want new parent", child.Parent())
	}
	if len(parent.Children()) != 0 {
		t.Errorf("original parent still has %d children", len(parent.Children()))
	}
}

func TestRemoveDetaches(t *testing.T) {
	parent := NewElement("ul")
	a := NewElement("li")
	b := NewElement("li")
	parent.Append(a, b)

	parent.Remove(a)

	if a.Parent() != nil {
		t.Errorf("removed child still has parent")
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != b {
		t.Errorf("parent children = %v, want [b]", parent.Children())
	}
}

func TestAttrRoundTrip(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("data-block-type", "paragraph")
	el.SetAttr("data-block-type", "h1") // overwrite, not duplicate

	got, ok := el.Attr("data-block-type")
	if !ok || got != "h1" {
		t.Errorf("Attr = %q, %v, want %q, true", got, ok, "h1")
	}
	if len(el.Attrs()) != 1 {
		t.Errorf("attrs = %v, want single entry", el.Attrs())
	}

	el.RemoveAttr("data-block-type")
	if _, ok := el.Attr("data-block-type"); ok {
		t.Errorf("attribute survived RemoveAttr")
	}
}

func TestClassHelpers(t *testing.T) {
	el := NewElement("div", Attr{Key: "class", Val: "block"})

	el.AddClass("current")
	if !el.HasClass("block") || !el.HasClass("current") {
		t.Fatalf("classes = %v, want block and current", el.Attrs())
	}

	el.AddClass("current") // idempotent
	if classes, _ := el.Attr("class"); classes != "block current" {
		t.Errorf("class = %q, want %q", classes, "block current")
	}

	el.RemoveClass("current")
	if el.HasClass("current") {
		t.Errorf("current class survived RemoveClass")
	}
}

func TestTextContent(t *testing.T) {
	li := NewElement("li")
	li.Append(NewElement("input", Attr{Key: "type", Val: "checkbox"}))
	span := NewElement("span")
	span.Append(NewText("Buy milk"))
	li.Append(span)

	if got := li.TextContent(); got != "Buy milk" {
		t.Errorf("TextContent = %q, want %q", got, "Buy milk")
	}
}

func TestListeners(t *testing.T) {
	el := NewElement("input")

	var fired int
	el.On("change", func(ev Event) {
		if ev.Target != el {
			t.Errorf("event target = %v, want the element itself", ev.Target)
		}
		fired++
	})

	el.Fire("change")
	el.Fire("change")
	el.Fire("focus") // no listener, no effect

	if fired != 2 {
		t.Errorf("listener fired %d times, want 2", fired)
	}
}
