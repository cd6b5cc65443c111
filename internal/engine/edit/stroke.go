package edit

import (
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
)

// Target is what a stroke edits: one glyph of a store plus the selection.
type Target struct {
	Store     *glyph.Store
	Codepoint glyph.Codepoint
	Selection *selection.CellSet
}

// Result describes the effect of applying an operation to one cell.
type Result struct {
	// Applied is false when the cell was out of bounds or already
	// covered by the stroke.
	Applied bool

	// Changed reports that a pixel value changed.
	Changed bool

	// Selection reports that the operation targeted the selection.
	// Selection edits never dirty the bitmap but still need a redraw.
	Selection bool
}

// NeedsRedraw reports whether the result is visible.
func (r Result) NeedsRedraw() bool {
	return r.Changed || r.Selection
}

// Stroke tracks the cells already processed in the current gesture.
type Stroke struct {
	covered selection.CellSet
	changed bool
}

// NewStroke creates an empty stroke.
func NewStroke() *Stroke {
	return &Stroke{}
}

// Reset starts a new stroke.
func (s *Stroke) Reset() {
	s.covered.Clear()
	s.changed = false
}

// Covered reports whether c was already processed in this stroke.
func (s *Stroke) Covered(c selection.Cell) bool {
	return s.covered.Has(c)
}

// Len returns the number of cells processed in this stroke.
func (s *Stroke) Len() int {
	return s.covered.Len()
}

// Changed reports whether any pixel changed during this stroke.
func (s *Stroke) Changed() bool {
	return s.changed
}

// Apply runs op on cell c of the target. Out-of-bounds cells and cells
// already covered by the stroke are ignored. Grid operations create the
// glyph on first use.
func (s *Stroke) Apply(op Operation, t Target, c selection.Cell) Result {
	if !c.In(t.Store.Width(), t.Store.Height()) {
		return Result{}
	}
	if !s.covered.Add(c) {
		return Result{}
	}

	if !op.TouchesGrid() {
		if t.Selection != nil {
			if op == OpSelect {
				t.Selection.Add(c)
			} else {
				t.Selection.Remove(c)
			}
		}
		return Result{Applied: true, Selection: true}
	}

	g, _ := t.Store.Ensure(t.Codepoint)
	changed := applyPixel(op, g, c)
	if changed {
		s.changed = true
	}
	return Result{Applied: true, Changed: changed}
}

// applyPixel mutates one pixel and reports whether it changed.
func applyPixel(op Operation, g *glyph.Grid, c selection.Cell) bool {
	switch op {
	case OpXor:
		return g.Toggle(c.X, c.Y)
	case OpSetOne:
		return g.Set(c.X, c.Y, true)
	case OpSetZero:
		return g.Set(c.X, c.Y, false)
	default:
		return false
	}
}
