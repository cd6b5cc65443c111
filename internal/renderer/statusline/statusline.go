// Package statusline renders the bottom status line and the jump prompt.
package statusline

import (
	"fmt"
	"strings"

	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Styles are the colours of the status line.
type Styles struct {
	Bar     core.Style
	Mode    core.Style
	Info    core.Style
	Warning core.Style
	Error   core.Style
}

// DefaultStyles returns the status line styles used without a theme.
func DefaultStyles() Styles {
	bar := core.DefaultStyle().Reverse()
	return Styles{
		Bar:     bar,
		Mode:    bar.Bold(),
		Info:    core.DefaultStyle(),
		Warning: core.DefaultStyle().WithForeground(core.ColorFromRGB(255, 200, 0)),
		Error:   core.DefaultStyle().WithForeground(core.ColorFromRGB(255, 80, 80)).Bold(),
	}
}

// State is the editor state shown on the status line.
type State struct {
	Mode      string
	Operation string
	Zoom      float64
	Undo      int
	Selected  int
	Codepoint string
	SpaceHeld bool
	Dragging  bool
}

// StatusLine renders the last screen row.
type StatusLine struct {
	state State

	// Prompt state
	promptActive bool
	promptLabel  string
	promptBuffer string

	// Message display
	message     string
	messageType MessageType

	styles Styles
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{styles: DefaultStyles()}
}

// SetStyles replaces the status line colours.
func (s *StatusLine) SetStyles(styles Styles) {
	s.styles = styles
}

// SetState updates the displayed editor state.
func (s *StatusLine) SetState(state State) {
	s.state = state
}

// State returns the displayed editor state.
func (s *StatusLine) State() State {
	return s.state
}

// SetPrompt opens or closes the input prompt.
func (s *StatusLine) SetPrompt(active bool, label string) {
	s.promptActive = active
	s.promptLabel = label
	if !active {
		s.promptBuffer = ""
	}
}

// SetPromptBuffer sets the text typed into the prompt.
func (s *StatusLine) SetPromptBuffer(buffer string) {
	s.promptBuffer = buffer
}

// PromptActive reports whether the prompt is open.
func (s *StatusLine) PromptActive() bool {
	return s.promptActive
}

// SetMessage shows a transient message in place of the status bar.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage removes the current message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Render draws the status line on row.
func (s *StatusLine) Render(b backend.Backend, row, width int) {
	if width <= 0 {
		return
	}
	switch {
	case s.promptActive:
		s.renderPrompt(b, row, width)
	case s.message != "":
		s.renderMessage(b, row, width)
	default:
		s.renderStatusBar(b, row, width)
	}
}

func (s *StatusLine) renderStatusBar(b backend.Backend, row, width int) {
	b.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', s.styles.Bar))

	mode := " " + strings.ToUpper(s.state.Mode) + " "
	col := put(b, 0, row, width, mode, s.styles.Mode)

	left := " " + s.left()
	col = put(b, col, row, width-col, left, s.styles.Bar) + col

	right := s.right() + " "
	rw := core.StringWidth(right)
	if col+rw < width {
		put(b, width-rw, row, rw, right, s.styles.Bar)
	}
}

func (s *StatusLine) left() string {
	parts := []string{s.state.Operation}
	if s.state.SpaceHeld {
		parts = append(parts, "pan-lock")
	}
	if s.state.Dragging {
		parts = append(parts, "dragging")
	}
	if s.state.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", s.state.Selected))
	}
	return strings.Join(parts, " │ ")
}

func (s *StatusLine) right() string {
	return fmt.Sprintf("%s │ zoom %.2f │ undo %d", s.state.Codepoint, s.state.Zoom, s.state.Undo)
}

func (s *StatusLine) renderPrompt(b backend.Backend, row, width int) {
	b.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', s.styles.Info))
	put(b, 0, row, width, s.promptLabel+s.promptBuffer+"▏", s.styles.Info)
}

func (s *StatusLine) renderMessage(b backend.Backend, row, width int) {
	style := s.styles.Info
	switch s.messageType {
	case MessageWarning:
		style = s.styles.Warning
	case MessageError:
		style = s.styles.Error
	}
	b.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', style))
	put(b, 0, row, width, core.Truncate(s.message, width), style)
}

// put writes text at (x, y) within width columns and returns the number
// of columns used.
func put(b backend.Backend, x, y, width int, text string, style core.Style) int {
	if width <= 0 {
		return 0
	}
	cells := core.CellsFromString(text, style, width)
	for i, c := range cells {
		b.SetCell(x+i, y, c)
	}
	return len(cells)
}
