package renderer

import "github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"

// ColumnsPerUnit is the number of terminal columns in one canvas unit.
const ColumnsPerUnit = 2

// Layout maps a terminal of Width x Height cells to screen bands.
type Layout struct {
	Width, Height int
}

// InfoRow is the row of the info line.
func (l Layout) InfoRow() int { return 0 }

// StatusRow is the row of the status line.
func (l Layout) StatusRow() int { return l.Height - 1 }

// Canvas returns the screen rectangle of the canvas.
func (l Layout) Canvas() core.ScreenRect {
	return core.ScreenRect{Top: 1, Left: 0, Bottom: max(1, l.Height-1), Right: max(0, l.Width)}
}

// CanvasSize returns the canvas size in canvas units.
func (l Layout) CanvasSize() (width, height float64) {
	c := l.Canvas()
	return float64(c.Width()) / ColumnsPerUnit, float64(c.Height())
}

// ToCanvas converts the centre of screen cell (col, row) to canvas
// coordinates. ok is false when the cell is outside the canvas.
func (l Layout) ToCanvas(col, row int) (x, y float64, ok bool) {
	c := l.Canvas()
	x = (float64(col-c.Left) + 0.5) / ColumnsPerUnit
	y = float64(row-c.Top) + 0.5
	return x, y, c.Contains(col, row)
}
