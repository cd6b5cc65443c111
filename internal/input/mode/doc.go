// Package mode holds the interaction mode and edit operation of the glyph
// editor.
//
// The interaction mode has two layers: a persistent mode the user picks
// (draw, move, drag) and an optional temporary override that is active only
// while a modifier condition holds, such as a right-button press or a
// space-drag pan. The effective mode is resolved by the pure Resolve
// function:
//
//	effective := mode.Resolve(persistent, override)
//
// The override is cleared by the stroke lifecycle when the pointer is
// released. The edit operation is independent of the mode and persists
// across strokes until changed.
//
// Manager notifies registered callbacks whenever the resolved state
// changes, which lets hosts refresh their toolbar or status line.
package mode
