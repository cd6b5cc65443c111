package charinfo

import (
	"errors"
	"strings"
	"testing"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
)

func TestParseJump(t *testing.T) {
	tests := []struct {
		in   string
		want glyph.Codepoint
	}{
		{"0041", 0x41},
		{"U+0041", 0x41},
		{"u+00e9", 0xE9},
		{"1F600", 0x1F600},
		{"01FFFF", 0x1FFFF},
		{"A", 'A'},
		{"abc", 'a'},
		{"é", 0xE9},
		{"041", '0'},   // too short for hex, first character
		{"U+12", 'U'},  // too short for hex, first character
		{"0041 ", '0'}, // trailing space disables the hex form
		{"😀", 0x1F600},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJump(tt.in)
			if err != nil {
				t.Fatalf("ParseJump(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseJump(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseJumpErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"20000", ErrOutOfRange},
		{"U+10FFFF", ErrOutOfRange},
		{"\U000E0001", ErrOutOfRange},
		{"\xff", ErrInvalidUTF8},
		{"\xc3(", ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseJump(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseJump(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestDefaultBlocks(t *testing.T) {
	table := DefaultBlocks()
	if table.Len() == 0 {
		t.Fatal("embedded block table is empty")
	}

	tests := []struct {
		cp   glyph.Codepoint
		want string
	}{
		{0x41, "Basic Latin"},
		{0x7F, "Basic Latin"},
		{0x80, "Latin-1 Supplement"},
		{0x4E2D, "CJK Unified Ideographs"},
		{0x1F600, "Emoticons"},
	}
	for _, tt := range tests {
		b, ok := table.Lookup(tt.cp)
		if !ok || b.Name != tt.want {
			t.Errorf("Lookup(%v) = %q, %v; want %q", tt.cp, b.Name, ok, tt.want)
		}
	}

	if _, ok := table.Lookup(0x0800); ok {
		t.Error("U+0800 is not in the embedded table")
	}
}

func TestParseBlocksErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad range", "blocks:\n  - { range: \"zz..0010\", name: X }\n"},
		{"reversed", "blocks:\n  - { range: \"0010..0000\", name: X }\n"},
		{"no name", "blocks:\n  - { range: \"0000..0010\" }\n"},
		{"overlap", "blocks:\n  - { range: \"0000..0010\", name: A }\n  - { range: \"0010..0020\", name: B }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBlocks([]byte(tt.data)); !errors.Is(err, ErrBadBlock) {
				t.Errorf("ParseBlocks error = %v, want ErrBadBlock", err)
			}
		})
	}

	if _, err := ParseBlocks([]byte("blocks: [")); err == nil {
		t.Error("expected a YAML decode error")
	}
}

func TestDescribe(t *testing.T) {
	d := NewRuneDescriber(nil)

	info := d.Describe(0x41)
	if info.Name != "LATIN CAPITAL LETTER A" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Category != "Lu" {
		t.Errorf("Category = %q, want Lu", info.Category)
	}
	if info.Block != "Basic Latin" {
		t.Errorf("Block = %q", info.Block)
	}

	if got := Category(0x0378); got != "Cn" {
		t.Errorf("Category(unassigned) = %q, want Cn", got)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'ǅ', "Lt"},
		{'ʰ', "Lm"},
		{'中', "Lo"},
		{'\u0301', "Mn"},
		{'7', "Nd"},
		{'_', "Pc"},
		{'$', "Sc"},
		{' ', "Zs"},
		{'\n', "Cc"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Category(tt.r); got != tt.want {
				t.Errorf("Category(%U) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format(0x41, Info{Name: "LATIN CAPITAL LETTER A", Block: "Basic Latin"})
	want := `U+0041 (65): "A" LATIN CAPITAL LETTER A; Block: Basic Latin`
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	got = Format(0x1FFFF, Info{})
	if !strings.HasPrefix(got, "U+1FFFF (131071): ") {
		t.Errorf("Format(0x1FFFF) = %q", got)
	}

	if got := Format(0x0A, Info{}); !strings.Contains(got, "\"�\"") {
		t.Errorf("control characters should be replaced, got %q", got)
	}
}
