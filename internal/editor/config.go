package editor

import (
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/viewport"
)

// Config holds session settings.
type Config struct {
	// GlyphWidth and GlyphHeight are the grid size of every glyph.
	GlyphWidth, GlyphHeight int

	// CanvasWidth and CanvasHeight are the initial canvas size.
	CanvasWidth, CanvasHeight float64

	// Zoom is the initial log2 pixel size, clamped to [MinZoom, MaxZoom].
	Zoom, MinZoom, MaxZoom float64

	// PreviewScale is the size of one preview strip pixel. Zero disables
	// the strip.
	PreviewScale float64

	// StartCodepoint is the initially edited codepoint.
	StartCodepoint glyph.Codepoint

	// Operation and Mode are the initial operation and persistent mode.
	Operation edit.Operation
	Mode      mode.Mode

	// HistoryLimit caps the undo entries kept per codepoint. Zero keeps
	// everything.
	HistoryLimit int
}

// DefaultConfig returns the default session settings.
func DefaultConfig() Config {
	return Config{
		GlyphWidth:     8,
		GlyphHeight:    8,
		CanvasWidth:    800,
		CanvasHeight:   600,
		Zoom:           viewport.DefaultZoom,
		MinZoom:        viewport.DefaultMin,
		MaxZoom:        viewport.DefaultMax,
		PreviewScale:   2,
		StartCodepoint: 'A',
		Operation:      edit.OpXor,
		Mode:           mode.Draw,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.GlyphWidth <= 0 {
		c.GlyphWidth = d.GlyphWidth
	}
	if c.GlyphHeight <= 0 {
		c.GlyphHeight = d.GlyphHeight
	}
	if c.MaxZoom < c.MinZoom {
		c.MinZoom, c.MaxZoom = d.MinZoom, d.MaxZoom
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
	if c.PreviewScale < 0 {
		c.PreviewScale = 0
	}
	if !c.StartCodepoint.Valid() {
		c.StartCodepoint = d.StartCodepoint
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	return c
}
