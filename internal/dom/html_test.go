package dom

import (
	"strings"
	"testing"
)

func TestParseFragment(t *testing.T) {
	el, err := Parse(`<h1 class="block" data-block-type="h1">Title</h1>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if el == nil {
		t.Fatal("Parse returned nil element")
	}
	if el.Tag != "h1" {
		t.Errorf("tag = %q, want h1", el.Tag)
	}
	if typ, _ := el.Attr("data-block-type"); typ != "h1" {
		t.Errorf("data-block-type = %q, want h1", typ)
	}
	if got := el.TextContent(); got != "Title" {
		t.Errorf("text = %q, want Title", got)
	}
}

func TestParseAllSkipsWhitespace(t *testing.T) {
	els, err := ParseAll("<p>one</p>\n  <p>two</p>\n")
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("parsed %d elements, want 2", len(els))
	}
	if els[0].TextContent() != "one" || els[1].TextContent() != "two" {
		t.Errorf("texts = %q, %q", els[0].TextContent(), els[1].TextContent())
	}
}

func TestParseEmptyFragment(t *testing.T) {
	el, err := Parse("   \n  ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if el != nil {
		t.Errorf("Parse = %v, want nil for empty fragment", el)
	}
}

func TestOuterHTMLRoundTrip(t *testing.T) {
	src := `<li class="task-list-item"><input type="checkbox" checked=""/><span contenteditable="true">Buy milk</span></li>`
	el, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := el.OuterHTML()
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if reparsed.Tag != "li" {
		t.Errorf("reparsed tag = %q, want li", reparsed.Tag)
	}
	if got := reparsed.TextContent(); got != "Buy milk" {
		t.Errorf("reparsed text = %q, want Buy milk", got)
	}
	if reparsed.QueryFirst("input[type=checkbox]") == nil {
		t.Errorf("checkbox lost in round trip: %s", out)
	}
}

func TestQuery(t *testing.T) {
	el, err := Parse(`<ul><li>a</li><li><input type="checkbox"/>b</li></ul>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	items := el.Query("li")
	if len(items) != 2 {
		t.Fatalf("Query(li) = %d elements, want 2", len(items))
	}

	boxes := el.Query("input[type=checkbox]")
	if len(boxes) != 1 {
		t.Fatalf("Query(checkbox) = %d elements, want 1", len(boxes))
	}
}

func TestQueryInvalidSelector(t *testing.T) {
	el := NewElement("div")
	if got := el.Query("[[["); got != nil {
		t.Errorf("Query with invalid selector = %v, want nil", got)
	}
	if el.Matches("[[[") {
		t.Errorf("Matches with invalid selector = true, want false")
	}
}

func TestClosest(t *testing.T) {
	block := NewElement("li",
		Attr{Key: "class", Val: "task-list-item"},
		Attr{Key: "data-block-type", Val: "task-list"})
	box := NewElement("input", Attr{Key: "type", Val: "checkbox"})
	block.Append(box)

	got := box.Closest("[data-block-type]")
	if got != block {
		t.Errorf("Closest = %v, want the owning li", got)
	}
	if box.Closest("table") != nil {
		t.Errorf("Closest(table) matched unexpectedly")
	}
}

func TestInnerHTML(t *testing.T) {
	el := NewElement("p")
	el.Append(NewText("hello "))
	strong := NewElement("strong")
	strong.Append(NewText("world"))
	el.Append(strong)

	got := el.InnerHTML()
	if !strings.Contains(got, "hello ") || !strings.Contains(got, "<strong>world</strong>") {
		t.Errorf("InnerHTML = %q", got)
	}
}
