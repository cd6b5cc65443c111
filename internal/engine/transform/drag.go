// Package transform moves selected pixel blocks by an integer delta.
//
// A drag has two phases. While the pointer is held, Preview computes where
// the selection would land without touching the grid. On release, Commit
// moves the pixels. Cells shifted outside the grid are dropped in both
// phases; nothing wraps around.
package transform

import (
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
)

// Delta is an integer shift in grid cells.
type Delta struct {
	DX, DY int
}

// IsZero reports whether the delta moves nothing.
func (d Delta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Preview returns sel shifted by d and clipped to a width x height grid.
// Neither sel nor any grid is modified.
func Preview(sel *selection.CellSet, d Delta, width, height int) *selection.CellSet {
	out := selection.NewCellSet()
	sel.Each(func(c selection.Cell) {
		moved := c.Add(d.DX, d.DY)
		if moved.In(width, height) {
			out.Add(moved)
		}
	})
	return out
}

// Commit moves the selected pixels of g by d and returns the new selection.
//
// Every source cell is cleared first, then each selected value is written
// from a snapshot of the pre-drag grid to its destination, so sources and
// destinations that overlap never read a half-updated grid. Destinations
// outside the grid are dropped along with their values. Sources are
// processed in selection insertion order; if two ever map to the same
// destination the later one wins.
//
// A nil grid means the glyph does not exist yet: only the selection moves.
func Commit(g *glyph.Grid, sel *selection.CellSet, d Delta, width, height int) *selection.CellSet {
	if g == nil {
		return Preview(sel, d, width, height)
	}

	snapshot := g.Clone()
	sel.Each(func(c selection.Cell) {
		g.Set(c.X, c.Y, false)
	})

	out := selection.NewCellSet()
	sel.Each(func(c selection.Cell) {
		moved := c.Add(d.DX, d.DY)
		if !moved.In(width, height) {
			return
		}
		out.Add(moved)
		g.Set(moved.X, moved.Y, snapshot.Get(c.X, c.Y))
	})
	return out
}
