package editor

import (
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
)

// Direct edits bypass strokes and the pointer. They are used by scripts
// and do not record history; call Commit afterwards.

// Pixel returns the value of pixel (x, y) of the current glyph.
func (s *Session) Pixel(x, y int) bool {
	g := s.store.Get(s.current)
	if g == nil {
		return false
	}
	return g.Get(x, y)
}

// SetPixel sets pixel (x, y) of the current glyph, creating the glyph if
// needed. Out-of-bounds writes are ignored. It reports whether the pixel
// changed.
func (s *Session) SetPixel(x, y int, v bool) bool {
	if !(selection.Cell{X: x, Y: y}).In(s.cfg.GlyphWidth, s.cfg.GlyphHeight) {
		return false
	}
	g, _ := s.store.Ensure(s.current)
	if !g.Set(x, y, v) {
		return false
	}
	s.emit(ChangeGlyph)
	return true
}

// TogglePixel flips pixel (x, y) of the current glyph.
func (s *Session) TogglePixel(x, y int) bool {
	if !(selection.Cell{X: x, Y: y}).In(s.cfg.GlyphWidth, s.cfg.GlyphHeight) {
		return false
	}
	g, _ := s.store.Ensure(s.current)
	g.Toggle(x, y)
	s.emit(ChangeGlyph)
	return true
}

// ClearGlyph sets every pixel of the current glyph to false. A missing
// glyph stays missing.
func (s *Session) ClearGlyph() {
	g := s.store.Get(s.current)
	if g == nil || g.Count() == 0 {
		return
	}
	g.Clear()
	s.emit(ChangeGlyph)
}

// Select adds cell c to the selection.
func (s *Session) Select(c selection.Cell) bool {
	if !c.In(s.cfg.GlyphWidth, s.cfg.GlyphHeight) || !s.selection.Add(c) {
		return false
	}
	s.emit(ChangeSelection)
	return true
}

// Deselect removes cell c from the selection.
func (s *Session) Deselect(c selection.Cell) bool {
	if !s.selection.Remove(c) {
		return false
	}
	s.emit(ChangeSelection)
	return true
}

// GlyphSize returns the grid size shared by every glyph.
func (s *Session) GlyphSize() (w, h int) {
	return s.cfg.GlyphWidth, s.cfg.GlyphHeight
}
