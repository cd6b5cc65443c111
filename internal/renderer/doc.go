// Package renderer draws an editing session on a terminal backend.
//
// The screen is split into three bands:
//
//	row 0          info line for the current codepoint
//	rows 1..h-2    canvas, with the preview strip along its bottom
//	row h-1        status line or jump prompt
//
// Canvas coordinates are measured in units of two columns by one row so
// that square glyph pixels look square in a typical terminal font. Layout
// converts between screen cells and canvas coordinates; the app uses it to
// turn mouse positions into pointer events.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	session.OnChange(func(editor.Change) { r.MarkDirty() })
//	r.RenderIfDirty(session)
package renderer
