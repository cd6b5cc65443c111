package editor

import "strings"

// Change is a set of flags describing what an operation changed.
type Change uint8

const (
	ChangeGlyph Change = 1 << iota
	ChangeSelection
	ChangeView
	ChangeMode
	ChangeCodepoint

	ChangeNone Change = 0
	ChangeAll         = ChangeGlyph | ChangeSelection | ChangeView | ChangeMode | ChangeCodepoint
)

// Has reports whether c contains any of the flags in f.
func (c Change) Has(f Change) bool {
	return c&f != 0
}

// String returns "glyph|view" style text.
func (c Change) String() string {
	if c == ChangeNone {
		return "none"
	}
	names := []struct {
		f    Change
		name string
	}{
		{ChangeGlyph, "glyph"},
		{ChangeSelection, "selection"},
		{ChangeView, "view"},
		{ChangeMode, "mode"},
		{ChangeCodepoint, "codepoint"},
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.f) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ChangeListener is called after an operation changed session state.
type ChangeListener func(Change)
