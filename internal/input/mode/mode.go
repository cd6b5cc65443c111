package mode

import (
	"fmt"
	"strings"
)

// Mode is an interaction mode.
type Mode uint8

const (
	// None ignores pointer strokes.
	None Mode = iota
	// Draw applies the current operation to covered cells.
	Draw
	// Move pans the view.
	Move
	// Drag moves the selected pixels.
	Drag
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Draw:
		return "draw"
	case Move:
		return "move"
	case Drag:
		return "drag"
	default:
		return "unknown"
	}
}

// Parse parses a mode name as produced by String.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "draw":
		return Draw, nil
	case "move", "pan":
		return Move, nil
	case "drag":
		return Drag, nil
	default:
		return None, fmt.Errorf("unknown mode %q", s)
	}
}

// Override is an optional temporary mode.
type Override struct {
	Mode   Mode
	Active bool
}

// Temporary returns an active override for m.
func Temporary(m Mode) Override {
	return Override{Mode: m, Active: true}
}

// Resolve returns the effective mode: the override when active, else the
// persistent mode.
func Resolve(persistent Mode, override Override) Mode {
	if override.Active {
		return override.Mode
	}
	return persistent
}
