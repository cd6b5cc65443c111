package renderer

import (
	"fmt"
	"math"

	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/statusline"
)

// Renderer draws a session on a backend. It is not safe for concurrent
// use; the app event loop owns it.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	status  *statusline.StatusLine
	layout  Layout

	dirty  bool
	frames int
}

// New creates a renderer sized to the backend.
func New(b backend.Backend, theme Theme) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend: b,
		status:  statusline.New(),
		layout:  Layout{Width: w, Height: h},
		dirty:   true,
	}
	r.SetTheme(theme)
	return r
}

// SetTheme replaces the colours and schedules a redraw.
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
	r.status.SetStyles(t.StatusStyles())
	r.dirty = true
}

// Theme returns the current colours.
func (r *Renderer) Theme() Theme { return r.theme }

// StatusLine returns the status line component.
func (r *Renderer) StatusLine() *statusline.StatusLine { return r.status }

// Layout returns the current screen layout.
func (r *Renderer) Layout() Layout { return r.layout }

// Resize changes the screen size and schedules a redraw.
func (r *Renderer) Resize(width, height int) {
	r.layout = Layout{Width: width, Height: height}
	r.dirty = true
}

// MarkDirty schedules a redraw.
func (r *Renderer) MarkDirty() { r.dirty = true }

// NeedsRedraw reports whether a redraw is scheduled.
func (r *Renderer) NeedsRedraw() bool { return r.dirty }

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int { return r.frames }

// RenderIfDirty draws s if a redraw is scheduled. It reports whether a
// frame was drawn.
func (r *Renderer) RenderIfDirty(s *editor.Session) bool {
	if !r.dirty {
		return false
	}
	r.Render(s)
	return true
}

// Render draws a full frame.
func (r *Renderer) Render(s *editor.Session) {
	l := r.layout
	if l.Width <= 0 || l.Height <= 0 {
		return
	}

	r.backend.HideCursor()
	r.drawInfo(s)
	if l.Height > 2 {
		r.drawCanvas(s)
	}
	if l.Height > 1 {
		r.status.SetState(statusState(s))
		r.status.Render(r.backend, l.StatusRow(), l.Width)
	}
	r.backend.Show()

	r.dirty = false
	r.frames++
}

func statusState(s *editor.Session) statusline.State {
	return statusline.State{
		Mode:      s.Mode().String(),
		Operation: s.Operation().String(),
		Zoom:      s.Viewport().Zoom,
		Undo:      s.History().Len(s.Codepoint()),
		Selected:  s.Selection().Len(),
		Codepoint: s.Codepoint().String(),
		SpaceHeld: s.SpaceHeld(),
		Dragging:  s.Dragging(),
	}
}

func (r *Renderer) drawInfo(s *editor.Session) {
	style := r.theme.InfoStyle()
	row := r.layout.InfoRow()
	r.backend.Fill(core.RectFromSize(row, 0, 1, r.layout.Width), core.NewStyledCell(' ', style))

	cells := core.CellsFromString(core.Truncate(s.Info(), r.layout.Width), style, r.layout.Width)
	for i, c := range cells {
		r.backend.SetCell(i, row, c)
	}
}

func (r *Renderer) drawCanvas(s *editor.Session) {
	canvas := r.layout.Canvas()
	strip := s.PreviewStrip()
	vp := s.Viewport()

	for row := canvas.Top; row < canvas.Bottom; row++ {
		for col := canvas.Left; col < canvas.Right; col++ {
			x, y, _ := r.layout.ToCanvas(col, row)
			var bg core.Color
			if strip.Contains(vp.CanvasHeight, y) {
				bg = r.previewColor(s, x, y)
			} else {
				bg = r.canvasColor(s, x, y)
			}
			r.backend.SetCell(col, row, core.NewStyledCell(' ', core.DefaultStyle().WithBackground(bg)))
		}
	}
}

// canvasColor returns the colour of the glyph editor at canvas point (x, y).
func (r *Renderer) canvasColor(s *editor.Session, x, y float64) core.Color {
	vp := s.Viewport()
	c := vp.CellAt(x, y)
	if !vp.Inside(c) {
		return r.theme.Background
	}

	color := r.theme.PixelOff
	if g := s.Glyph(); g != nil && g.Get(c.X, c.Y) {
		color = r.theme.PixelOn
	}
	if s.Selection().Has(c) {
		color = color.Blend(r.theme.Selection, 0.5)
	}
	if s.Hovered() && !s.Down() && s.Mode() == mode.Draw && s.HoverCell() == c {
		color = color.Lighten(0.08)
	}
	return color
}

// previewColor returns the colour of the preview strip at canvas point
// (x, y). Slot i shows the codepoint i-centre places from the current one.
func (r *Renderer) previewColor(s *editor.Session, x, y float64) core.Color {
	strip := s.PreviewStrip()
	vp := s.Viewport()

	slotW := strip.SlotWidth()
	slot := int(math.Floor(x / slotW))
	if slot >= strip.Slots(vp.CanvasWidth) {
		return r.theme.Background
	}

	offset := slot - strip.Centre(vp.CanvasWidth)
	bg := r.theme.Background
	if offset == 0 {
		bg = r.theme.PixelOff
	}

	cp, ok := s.Codepoint().Offset(offset)
	if !ok {
		return bg
	}
	g := s.Store().Get(cp)
	if g == nil {
		return bg
	}

	top := vp.CanvasHeight - strip.Height()
	px := int(math.Floor((x-float64(slot)*slotW)/strip.Scale)) - 1
	py := int(math.Floor((y-top)/strip.Scale)) - 1
	if g.Inside(px, py) && g.Get(px, py) {
		return r.theme.Preview
	}
	return bg
}

// String describes the renderer state, for logging.
func (r *Renderer) String() string {
	return fmt.Sprintf("renderer %dx%d frames=%d dirty=%v", r.layout.Width, r.layout.Height, r.frames, r.dirty)
}
