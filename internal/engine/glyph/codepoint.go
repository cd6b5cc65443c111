package glyph

import "fmt"

// Codepoint identifies one Unicode character in the editor.
type Codepoint int32

// Codepoint domain limits.
const (
	MinCodepoint Codepoint = 0
	MaxCodepoint Codepoint = 0x1FFFF
)

// Valid reports whether cp lies within [MinCodepoint, MaxCodepoint].
func (cp Codepoint) Valid() bool {
	return cp >= MinCodepoint && cp <= MaxCodepoint
}

// Offset returns cp+n and whether the result is still a valid codepoint.
func (cp Codepoint) Offset(n int) (Codepoint, bool) {
	next := int64(cp) + int64(n)
	if next < int64(MinCodepoint) || next > int64(MaxCodepoint) {
		return cp, false
	}
	return Codepoint(next), true
}

// Rune returns the codepoint as a rune.
func (cp Codepoint) Rune() rune {
	return rune(cp)
}

// String returns the U+XXXX notation, padded to at least four hex digits.
func (cp Codepoint) String() string {
	return fmt.Sprintf("U+%04X", int32(cp))
}
