package charinfo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
)

// Info is the display metadata of a codepoint.
type Info struct {
	Name     string
	Category string
	Block    string
}

// Describer looks up codepoint metadata.
type Describer interface {
	Describe(cp glyph.Codepoint) Info
}

// RuneDescriber is the default Describer.
type RuneDescriber struct {
	Blocks *BlockTable
}

// NewRuneDescriber creates a describer using blocks, or the embedded
// table when blocks is nil.
func NewRuneDescriber(blocks *BlockTable) *RuneDescriber {
	if blocks == nil {
		blocks = DefaultBlocks()
	}
	return &RuneDescriber{Blocks: blocks}
}

// Describe implements Describer.
func (d *RuneDescriber) Describe(cp glyph.Codepoint) Info {
	r := cp.Rune()
	info := Info{
		Name:     runenames.Name(r),
		Category: Category(r),
	}
	if b, ok := d.Blocks.Lookup(cp); ok {
		info.Block = b.Name
	}
	return info
}

// categoryNames lists the general categories in a fixed order. Grouping
// categories such as "LC" are left out.
var categoryNames = []string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co",
}

// Category returns the two-letter general category of r, or "Cn" when r
// is unassigned.
func Category(r rune) string {
	for _, name := range categoryNames {
		if t, ok := unicode.Categories[name]; ok && unicode.Is(t, r) {
			return name
		}
	}
	return "Cn"
}

// Format produces the info line for cp:
//
//	U+0041 (65): "A" LATIN CAPITAL LETTER A; Block: Basic Latin
func Format(cp glyph.Codepoint, info Info) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "U+%04X (%d): %q", int32(cp), int32(cp), printable(cp))
	if info.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(info.Name)
	}
	if info.Block != "" {
		sb.WriteString("; Block: ")
		sb.WriteString(info.Block)
	}
	return sb.String()
}

// printable returns the character for display, replacing controls and
// unassigned codepoints with U+FFFD.
func printable(cp glyph.Codepoint) string {
	r := cp.Rune()
	if !unicode.IsPrint(r) && r != ' ' {
		return string(unicode.ReplacementChar)
	}
	return string(r)
}
