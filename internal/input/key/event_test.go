package key

import "testing"

func TestNewRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	if e.Key != KeyRune {
		t.Errorf("NewRuneEvent key = %v, want KeyRune", e.Key)
	}
	if e.Rune != 'a' {
		t.Errorf("NewRuneEvent rune = %q, want 'a'", e.Rune)
	}
	if e.Modifiers != ModNone {
		t.Errorf("NewRuneEvent modifiers = %v, want ModNone", e.Modifiers)
	}
}

func TestNewSpecialEvent(t *testing.T) {
	e := NewSpecialEvent(KeyEnter, ModNone)
	if e.Key != KeyEnter {
		t.Errorf("NewSpecialEvent key = %v, want KeyEnter", e.Key)
	}
	if e.Rune != 0 {
		t.Errorf("NewSpecialEvent rune = %q, want 0", e.Rune)
	}
}

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent(' ', ModNone), true},
		{NewRuneEvent('\n', ModNone), false}, // Not printable
		{NewSpecialEvent(KeyEscape, ModNone), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsChar(); got != tt.want {
			t.Errorf("Event.IsChar() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), false},
		{NewRuneEvent('A', ModShift), false}, // Shift alone doesn't count for runes
		{NewRuneEvent('a', ModCtrl), true},
		{NewSpecialEvent(KeyEnter, ModNone), false},
		{NewSpecialEvent(KeyTab, ModShift), true}, // Shift counts for special keys
	}

	for _, tt := range tests {
		if got := tt.event.IsModified(); got != tt.want {
			t.Errorf("Event.IsModified() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventIsCtrlSpace(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewSpecialEvent(KeySpace, ModCtrl), true},
		{NewRuneEvent(' ', ModCtrl), true},
		{NewSpecialEvent(KeySpace, ModNone), false},
		{NewRuneEvent(' ', ModNone), false},
		{NewSpecialEvent(KeyEnter, ModCtrl), false},
	}

	for _, tt := range tests {
		if got := tt.event.IsCtrlSpace(); got != tt.want {
			t.Errorf("Event.IsCtrlSpace() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyTab, ModNone), "Tab"},
		{NewSpecialEvent(KeySpace, ModCtrl), "C-Space"},
		{NewSpecialEvent(KeyTab, ModCtrl|ModShift), "C-S-Tab"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}
