// Package keymap maps key presses to editor actions.
//
// A Keymap starts from the default bindings and can be overridden from the
// [keymap] configuration table, where each entry maps a key specification
// to an action name:
//
//	[keymap]
//	"x" = "operation.xor"
//	"Ctrl+z" = "history.undo"
//	"u" = "none"
//
// Binding a key to "none" removes it. Unknown action names are rejected.
package keymap
