package charinfo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
)

// Jump input errors.
var (
	ErrEmptyInput  = errors.New("empty codepoint input")
	ErrOutOfRange  = errors.New("codepoint out of range")
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

var hexPattern = regexp.MustCompile(`(?i)^(?:U\+)?([0-9A-F]{4,6})$`)

// ParseJump parses the jump input. Four to six hex digits, optionally
// prefixed with "U+", are read as a codepoint; any other input jumps to
// its first character.
func ParseJump(s string) (glyph.Codepoint, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	var cp int64
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseInt(m[1], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", s, err)
		}
		cp = v
	} else {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
		}
		cp = int64(r)
	}

	if cp < int64(glyph.MinCodepoint) || cp > int64(glyph.MaxCodepoint) {
		return 0, fmt.Errorf("%w: U+%04X", ErrOutOfRange, cp)
	}
	return glyph.Codepoint(cp), nil
}
