package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsCtrlSpace reports whether the event is Ctrl+Space, in either the
// special-key or the rune form a surface may deliver it as.
func (e Event) IsCtrlSpace() bool {
	if !e.Modifiers.HasCtrl() {
		return false
	}
	return e.Key == KeySpace || (e.Key == KeyRune && e.Rune == ' ')
}

// String returns a canonical string representation.
// Examples: "a", "Enter", "C-Space", "C-S-Tab".
func (e Event) String() string {
	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	default:
		keyName = e.Key.String()
	}

	mods := e.Modifiers
	if e.IsRune() {
		// Shift is part of the character itself.
		mods &^= ModShift
	}
	if mods == ModNone {
		return keyName
	}
	return strings.Join([]string{mods.String(), keyName}, "-")
}
