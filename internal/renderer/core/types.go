// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Attribute represents text attributes (bold, reverse, ...).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone    Attribute = 0
	AttrBold    Attribute = 1 << iota
	AttrDim               // Faint text
	AttrReverse           // Swap fg/bg
	AttrUnderline
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a 24-bit colour or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb".
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful colour, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Colorful converts c for colour arithmetic. The default colour maps to
// black.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns the hex form, or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c towards other by amount in [0,1] in Lab space. Blending
// with the default colour returns the non-default side.
func (c Color) Blend(other Color, amount float64) Color {
	switch {
	case c.Default:
		return other
	case other.Default:
		return c
	}
	return FromColorful(c.Colorful().BlendLab(other.Colorful(), amount))
}

// Lighten returns c with its Lab lightness raised by amount.
func (c Color) Lighten(amount float64) Color {
	if c.Default {
		return c
	}
	l, a, b := c.Colorful().Lab()
	l += amount
	if l > 1 {
		l = 1
	}
	return FromColorful(colorful.Lab(l, a, b))
}

// Style represents the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell. Zero marks the second
	// column of a wide character.
	Width int

	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the filler for the second column of a wide
// character.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equals(other.Style)
}

// RuneWidth returns the display width of a rune.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether column x, row y lies within the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return y >= r.Top && y < r.Bottom && x >= r.Left && x < r.Right
}
