package block

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line        string
		wantType    Type
		wantContent string
	}{
		{"# Title", H1, "Title"},
		{"## Section", H2, "Section"},
		{"### Sub", H3, "Sub"},
		{"* bullet", UnorderedList, "bullet"},
		{"- dash bullet", UnorderedList, "dash bullet"},
		{"1. first", OrderedList, "first"},
		{"42. forty-second", OrderedList, "forty-second"},
		{"- [ ] todo", TaskList, "todo"},
		{"- [x] done", TaskList, "done"},
		{"plain text", Paragraph, "plain text"},
		{"#not a heading", Paragraph, "#not a heading"},
		{"1.not ordered", Paragraph, "1.not ordered"},
	}

	for _, tt := range tests {
		b := ParseLine(tt.line)
		if b == nil {
			t.Fatalf("ParseLine(%q) = nil", tt.line)
		}
		if b.Type() != tt.wantType {
			t.Errorf("ParseLine(%q) type = %v, want %v", tt.line, b.Type(), tt.wantType)
		}
		if b.Content != tt.wantContent {
			t.Errorf("ParseLine(%q) content = %q, want %q", tt.line, b.Content, tt.wantContent)
		}
	}
}

func TestTaskListWinsOverBullet(t *testing.T) {
	// "- [ ]" is also a valid bullet prefix; the more specific kind
	// must win in dispatch order.
	b := ParseLine("- [ ] ambiguous")
	if b.Type() != TaskList {
		t.Errorf("type = %v, want TaskList", b.Type())
	}
}

func TestMarkdownTriggers(t *testing.T) {
	tests := []struct {
		typ  Type
		want []string
	}{
		{H1, []string{"# "}},
		{H2, []string{"## "}},
		{Code, []string{"```", "~~~"}},
		{UnorderedList, []string{"* ", "- "}},
		{TaskList, []string{"- [ ]", "- [x]", "- [X]", "- []", "[ ]", "[x]", "[X]", "[]"}},
		{Paragraph, nil},
		{Table, nil},
	}

	for _, tt := range tests {
		if got := MarkdownTriggers(tt.typ); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("MarkdownTriggers(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestTriggerType(t *testing.T) {
	tests := []struct {
		text     string
		wantType Type
		wantOK   bool
	}{
		{"# ", H1, true},
		{"```", Code, true},
		{"- [ ]", TaskList, true},
		{"- ", UnorderedList, true},
		{"1. ", OrderedList, true},
		{"hello", Paragraph, false},
	}

	for _, tt := range tests {
		typ, ok := TriggerType(tt.text)
		if typ != tt.wantType || ok != tt.wantOK {
			t.Errorf("TriggerType(%q) = %v, %v, want %v, %v", tt.text, typ, ok, tt.wantType, tt.wantOK)
		}
	}
}

func TestHeadingRoundTrip(t *testing.T) {
	for _, typ := range []Type{H1, H2, H3} {
		src := headingPrefix(typ) + "Heading text"
		b := ParseMarkdown(typ, src)
		if b == nil {
			t.Fatalf("ParseMarkdown(%v, %q) = nil", typ, src)
		}
		if got := b.ToMarkdown(); got != src {
			t.Errorf("round trip = %q, want %q", got, src)
		}
	}
}

func TestHeadingDepthNotConfused(t *testing.T) {
	if b := ParseMarkdown(H1, "## deeper"); b != nil {
		t.Errorf("H1 parsed an h2 line: %+v", b)
	}
	if b := ParseMarkdown(H2, "# shallower"); b != nil {
		t.Errorf("H2 parsed an h1 line: %+v", b)
	}
}

func TestListRoundTrip(t *testing.T) {
	b := ParseMarkdown(UnorderedList, "- item text")
	if b == nil {
		t.Fatal("ParseMarkdown returned nil")
	}
	if got := b.ToMarkdown(); got != "- item text" {
		t.Errorf("round trip = %q", got)
	}
	if !b.Nested {
		t.Errorf("list item not marked nested")
	}

	n := ParseMarkdown(OrderedList, "3. third")
	if n == nil {
		t.Fatal("ParseMarkdown returned nil")
	}
	// Numbering is renormalized on serialize; content survives.
	if got := n.ToMarkdown(); got != "1. third" {
		t.Errorf("ordered round trip = %q, want %q", got, "1. third")
	}
}

func TestTypeTagRoundTrip(t *testing.T) {
	for _, typ := range types {
		got, ok := TypeFromString(typ.String())
		if !ok || got != typ {
			t.Errorf("TypeFromString(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	if _, ok := TypeFromString("bogus"); ok {
		t.Errorf("TypeFromString accepted an unknown tag")
	}
}
