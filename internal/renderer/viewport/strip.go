package viewport

import "math"

// PreviewStrip is the row of neighbouring glyphs drawn along the bottom
// of the canvas. Clicking a slot navigates relative to the current
// codepoint, which sits in the centre slot.
type PreviewStrip struct {
	// GlyphWidth and GlyphHeight are the glyph size in cells.
	GlyphWidth, GlyphHeight int

	// Scale is the screen size of one preview pixel.
	Scale float64
}

// SlotWidth returns the width of one slot, including a one-pixel margin
// on each side.
func (p PreviewStrip) SlotWidth() float64 {
	return float64(p.GlyphWidth+2) * p.Scale
}

// Height returns the strip height.
func (p PreviewStrip) Height() float64 {
	return float64(p.GlyphHeight+2) * p.Scale
}

// Contains reports whether screen row sy falls inside the strip of a
// canvas canvasHeight tall.
func (p PreviewStrip) Contains(canvasHeight, sy float64) bool {
	if p.Scale <= 0 {
		return false
	}
	return sy >= canvasHeight-p.Height()
}

// Slots returns how many slots fit on a canvas canvasWidth wide.
func (p PreviewStrip) Slots(canvasWidth float64) int {
	if p.Scale <= 0 {
		return 0
	}
	return int(math.Floor(canvasWidth / p.SlotWidth()))
}

// Centre returns the index of the slot holding the current codepoint.
func (p PreviewStrip) Centre(canvasWidth float64) int {
	return int(math.Floor(float64(p.Slots(canvasWidth))/2 + 0.5))
}

// Offset returns the codepoint offset of the slot under screen column sx.
func (p PreviewStrip) Offset(canvasWidth, sx float64) int {
	if p.Scale <= 0 {
		return 0
	}
	slot := int(math.Floor(sx / p.SlotWidth()))
	return slot - p.Centre(canvasWidth)
}
