// Package viewport maps between screen space and glyph grid space.
//
// The glyph is drawn centred on the canvas, scaled by a pixel size of
// 2^zoom and shifted by a pan offset. CellAt is the inverse of that
// placement:
//
//	cellX = floor((sx - panX - (canvasWidth - glyphWidth*pixelSize)/2) / pixelSize)
//
// and analogously for Y.
package viewport

import (
	"math"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
)

// Zoom defaults.
const (
	DefaultZoom   = 5.0
	DefaultMin    = -2.0
	DefaultMax    = 8.0
	WheelStrength = 0.001
)

// Viewport holds the pan and zoom of the editor canvas.
// It is owned by one editor session and is not safe for concurrent use.
type Viewport struct {
	// Pan offset in screen units.
	PanX, PanY float64

	// Zoom is the log2 of the pixel size.
	Zoom float64

	// Canvas size in screen units.
	CanvasWidth, CanvasHeight float64

	// Glyph size in cells.
	GlyphWidth, GlyphHeight int

	// MinZoom and MaxZoom clamp wheel zooming.
	MinZoom, MaxZoom float64

	// basePanX/Y is the pan at the start of the current pan gesture.
	basePanX, basePanY float64
}

// New creates a viewport for a glyphWidth x glyphHeight grid on a canvas
// of the given size.
func New(canvasWidth, canvasHeight float64, glyphWidth, glyphHeight int) *Viewport {
	return &Viewport{
		Zoom:         DefaultZoom,
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		GlyphWidth:   glyphWidth,
		GlyphHeight:  glyphHeight,
		MinZoom:      DefaultMin,
		MaxZoom:      DefaultMax,
	}
}

// PixelSize returns the on-screen size of one grid cell, 2^Zoom.
func (v *Viewport) PixelSize() float64 {
	return math.Pow(2, v.Zoom)
}

// Origin returns the screen position of the top-left corner of cell (0,0).
func (v *Viewport) Origin() (x, y float64) {
	ps := v.PixelSize()
	x = v.PanX + (v.CanvasWidth-float64(v.GlyphWidth)*ps)/2
	y = v.PanY + (v.CanvasHeight-float64(v.GlyphHeight)*ps)/2
	return x, y
}

// CellAt returns the grid cell under screen point (sx, sy). The cell may
// lie outside the grid; use Inside to check.
func (v *Viewport) CellAt(sx, sy float64) selection.Cell {
	ox, oy := v.Origin()
	ps := v.PixelSize()
	return selection.Cell{
		X: int(math.Floor((sx - ox) / ps)),
		Y: int(math.Floor((sy - oy) / ps)),
	}
}

// Inside reports whether c is a cell of the glyph grid.
func (v *Viewport) Inside(c selection.Cell) bool {
	return c.In(v.GlyphWidth, v.GlyphHeight)
}

// CellRect returns the screen rectangle covered by cell c.
func (v *Viewport) CellRect(c selection.Cell) (x, y, size float64) {
	ox, oy := v.Origin()
	ps := v.PixelSize()
	return ox + float64(c.X)*ps, oy + float64(c.Y)*ps, ps
}

// Delta converts a screen-space drag into a floored cell delta.
func (v *Viewport) Delta(fromX, fromY, toX, toY float64) (dx, dy int) {
	ps := v.PixelSize()
	dx = int(math.Floor((toX - fromX) / ps))
	dy = int(math.Floor((toY - fromY) / ps))
	return dx, dy
}

// BeginPan records the current pan as the base of a pan gesture.
func (v *Viewport) BeginPan() {
	v.basePanX, v.basePanY = v.PanX, v.PanY
}

// PanTo sets the pan to the gesture base shifted by (dx, dy) screen units.
// It reports whether the pan changed.
func (v *Viewport) PanTo(dx, dy float64) bool {
	x, y := v.basePanX+dx, v.basePanY+dy
	if x == v.PanX && y == v.PanY {
		return false
	}
	v.PanX, v.PanY = x, y
	return true
}

// EndPan makes the current pan the base for the next gesture.
func (v *Viewport) EndPan() {
	v.BeginPan()
}

// ZoomBy applies a wheel delta. Positive deltaY zooms out. The pan is
// scaled by the same factor so the glyph stays anchored around the canvas
// centre. It reports whether the zoom changed.
func (v *Viewport) ZoomBy(deltaY float64) bool {
	step := deltaY * WheelStrength
	next := v.Zoom - step
	if next < v.MinZoom {
		next = v.MinZoom
	}
	if next > v.MaxZoom {
		next = v.MaxZoom
	}
	if next == v.Zoom {
		return false
	}
	factor := math.Pow(2, v.Zoom-next)
	v.PanX /= factor
	v.PanY /= factor
	v.Zoom = next
	v.BeginPan()
	return true
}

// Resize changes the canvas size.
func (v *Viewport) Resize(width, height float64) {
	v.CanvasWidth, v.CanvasHeight = width, height
}
