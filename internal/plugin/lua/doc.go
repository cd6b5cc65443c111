// Package lua runs glyph editing scripts in a sandboxed gopher-lua state.
//
// Only the base, table, string and math libraries are opened. Scripts see
// a global "glyph" module bound to an editing session:
//
//	glyph.width()          grid width
//	glyph.height()         grid height
//	glyph.codepoint()      current codepoint as a number
//	glyph.get(x, y)        pixel value
//	glyph.set(x, y, v)     write a pixel; v is a boolean or 0/1
//	glyph.toggle(x, y)     flip a pixel
//	glyph.clear()          clear every pixel
//	glyph.jump(cp)         switch codepoint; cp is a number or "U+XXXX"
//	glyph.select(x, y)     add a cell to the selection
//	glyph.deselect_all()   clear the selection
//	glyph.undo()           undo; returns "restored", "deleted" or "nothing"
//
// Pixel writes on one glyph are recorded in the undo history as a single
// entry when the script finishes or switches glyph.
package lua
