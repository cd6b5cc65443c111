// Package backend provides terminal backend abstraction for the renderer.
package backend

import "github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	// EventClosed is returned by PollEvent once the backend is shut down.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool
}

// Key represents a keyboard key. Control-letter chords are reported as
// KeyRune with ModCtrl.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state. MouseNone on a mouse event
// means every button is released.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// IsWheel reports whether b is a wheel notch rather than a button.
func (b MouseButton) IsWheel() bool {
	return b == MouseWheelUp || b == MouseWheelDown
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the screen.
	Show()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting, including motion.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	events        chan Event
	closed        chan struct{}
	shows         int
	beeps         int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.cells = makeCells(b.width, b.height)
	return nil
}

func (b *NullBackend) Shutdown() {
	select {
	case <-b.closed:
	default:
		close(b.closed)
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position, or an empty cell.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < b.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.Fill(core.ScreenRect{Bottom: b.height, Right: b.width}, core.EmptyCell())
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) HideCursor() {}

// PollEvent returns posted events in order and EventClosed after Shutdown.
func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventClosed}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) EnableMouse()  {}
func (b *NullBackend) DisableMouse() {}
func (b *NullBackend) Beep()         { b.beeps++ }

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int { return b.shows }

// Beeps returns how many times Beep was called.
func (b *NullBackend) Beeps() int { return b.beeps }

// Row returns the runes of row y as a string, for assertions.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Width == 0 && c.Rune == 0 {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues the resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = makeCells(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func makeCells(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
