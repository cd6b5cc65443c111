package key

import (
	"strings"
	"unicode"
)

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Normalize returns the event in the form used for binding lookup.
// Shift is dropped from character keys since it is already part of the
// character, and Ctrl combinations use the lowercase letter.
func (e Event) Normalize() Event {
	if !e.IsRune() {
		return e
	}
	n := e
	n.Modifiers &^= ModShift
	if n.Modifiers.Has(ModCtrl) {
		n.Rune = unicode.ToLower(n.Rune)
	}
	return n
}

// String returns the canonical specification for the event, which Parse
// accepts. Examples: "d", "D", "Ctrl+z", "Space", "Shift+Tab".
func (e Event) String() string {
	n := e.Normalize()

	var name string
	switch {
	case n.IsRune() && n.Rune == ' ':
		name = "Space"
	case n.IsRune() && n.Rune == '+' && n.Modifiers != ModNone:
		name = "Plus"
	case n.IsRune():
		name = string(n.Rune)
	default:
		name = n.Key.String()
	}

	if mods := n.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// Equals reports whether two events describe the same key press.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// Matches reports whether the event matches a key specification.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

func isPrintable(r rune) bool {
	return unicode.IsPrint(r) && !strings.ContainsRune("\t\n", r)
}
