// Package glyph provides the bitmap storage for the glyph editor.
//
// A Grid is a fixed-size boolean pixel grid. A Store maps codepoints to
// grids and creates them lazily through a Factory the first time a
// codepoint is edited:
//
//	store := glyph.NewStore(glyph.NewFactory(8, 8))
//	g := store.Ensure(0x41) // all-false 8x8 grid
//	g.Set(2, 3, true)
//
// Every grid held by a Store has the store's configured dimensions.
// Reads outside the grid return false and writes outside it are ignored,
// so callers never need to bounds-check before touching a pixel.
package glyph
