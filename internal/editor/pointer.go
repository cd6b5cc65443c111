package editor

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Pointer is a pointer event in canvas coordinates.
type Pointer struct {
	X, Y   float64
	Button Button

	// Space reports that the pan key is held.
	Space bool
}
