package keymap

import "sort"

// Action names an editor command triggered by a key.
type Action string

// Editor actions.
const (
	ActionNone Action = "none"

	ActionOpXor      Action = "operation.xor"
	ActionOpSetOne   Action = "operation.one"
	ActionOpSetZero  Action = "operation.zero"
	ActionOpSelect   Action = "operation.select"
	ActionOpDeselect Action = "operation.deselect"

	ActionModeDraw Action = "mode.draw"
	ActionModeMove Action = "mode.move"
	ActionModeDrag Action = "mode.drag"

	// ActionPanHold toggles a sticky pan override, standing in for a held
	// space bar on terminals that do not report key release.
	ActionPanHold Action = "mode.panHold"

	ActionDeselectAll Action = "selection.clear"
	ActionUndo        Action = "history.undo"

	ActionPrevGlyph Action = "glyph.prev"
	ActionNextGlyph Action = "glyph.next"
	ActionJump      Action = "glyph.jump"

	ActionZoomIn  Action = "view.zoomIn"
	ActionZoomOut Action = "view.zoomOut"

	ActionQuit Action = "app.quit"
)

var actionDescriptions = map[Action]string{
	ActionOpXor:       "Operation: toggle pixels",
	ActionOpSetOne:    "Operation: set pixels",
	ActionOpSetZero:   "Operation: clear pixels",
	ActionOpSelect:    "Operation: add to selection",
	ActionOpDeselect:  "Operation: remove from selection",
	ActionModeDraw:    "Draw mode",
	ActionModeMove:    "Move (pan) mode",
	ActionModeDrag:    "Drag selection mode",
	ActionPanHold:     "Hold pan while dragging",
	ActionDeselectAll: "Deselect all",
	ActionUndo:        "Undo last change to this glyph",
	ActionPrevGlyph:   "Previous codepoint",
	ActionNextGlyph:   "Next codepoint",
	ActionJump:        "Jump to codepoint",
	ActionZoomIn:      "Zoom in",
	ActionZoomOut:     "Zoom out",
	ActionQuit:        "Quit",
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	_, ok := actionDescriptions[a]
	return ok
}

// Description returns a human-readable description of the action.
func (a Action) Description() string {
	return actionDescriptions[a]
}

// Actions returns every known action, sorted by name.
func Actions() []Action {
	out := make([]Action, 0, len(actionDescriptions))
	for a := range actionDescriptions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
