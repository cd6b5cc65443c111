// Package edit applies pixel editing operations during a stroke.
//
// A stroke is one continuous pointer-down to pointer-up gesture. Each cell
// is processed at most once per stroke, so dragging back over a pixel
// already toggled in the same gesture does not toggle it again.
package edit

import (
	"fmt"
	"strings"
)

// Operation selects how a stroke modifies the cells it covers.
type Operation uint8

const (
	// OpXor flips the pixel.
	OpXor Operation = iota
	// OpSetOne forces the pixel on.
	OpSetOne
	// OpSetZero forces the pixel off.
	OpSetZero
	// OpSelect adds the cell to the selection.
	OpSelect
	// OpDeselect removes the cell from the selection.
	OpDeselect
)

// Operations lists every operation in hotkey order.
var Operations = []Operation{OpXor, OpSetOne, OpSetZero, OpSelect, OpDeselect}

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpXor:
		return "xor"
	case OpSetOne:
		return "one"
	case OpSetZero:
		return "zero"
	case OpSelect:
		return "select"
	case OpDeselect:
		return "deselect"
	default:
		return "unknown"
	}
}

// TouchesGrid reports whether the operation writes pixels.
func (op Operation) TouchesGrid() bool {
	return op == OpXor || op == OpSetOne || op == OpSetZero
}

// ParseOperation parses an operation name as produced by String.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xor", "toggle":
		return OpXor, nil
	case "one", "set", "setone":
		return OpSetOne, nil
	case "zero", "clear", "setzero":
		return OpSetZero, nil
	case "select":
		return OpSelect, nil
	case "deselect":
		return OpDeselect, nil
	default:
		return OpXor, fmt.Errorf("unknown operation %q", s)
	}
}
