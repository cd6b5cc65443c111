// Package editor holds the glyph editing session.
//
// A Session owns the glyph store, the undo history, the viewport, the mode
// state and the selection, and turns pointer events into strokes:
//
//	s := editor.New(editor.DefaultConfig())
//	s.OnChange(func(c editor.Change) { r.MarkDirty() })
//
//	s.PointerDown(editor.Pointer{X: 10, Y: 12, Button: editor.ButtonLeft})
//	s.PointerMove(editor.Pointer{X: 40, Y: 12, Button: editor.ButtonLeft})
//	s.PointerUp(editor.Pointer{X: 40, Y: 12, Button: editor.ButtonLeft})
//
// Every operation is synchronous and total: points outside the grid, undo
// without history and drags that leave the grid are silently absorbed.
// The only errors are codepoint range errors from Jump.
//
// A Session is not safe for concurrent use; the application event loop is
// its single owner.
package editor
