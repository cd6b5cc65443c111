// Package key defines key events and the textual key specifications used
// in key bindings.
//
// Specifications are written as a single character ("d", "D", "["), a key
// name ("Enter", "Esc", "Space") or a modifier form ("Ctrl+Z", "Alt+Left").
// Vim-style angle-bracket notation ("<C-z>") is accepted too.
package key
