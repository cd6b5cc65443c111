package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/matteosandrin/online-pixel-font-creator/internal/charinfo"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/history"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/transform"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/viewport"
)

// ErrCodepointRange is returned when jumping outside the editable range.
var ErrCodepointRange = errors.New("codepoint outside editable range")

// Option configures a Session.
type Option func(*Session)

// WithDescriber sets the codepoint metadata source used by Info.
func WithDescriber(d charinfo.Describer) Option {
	return func(s *Session) {
		if d != nil {
			s.describer = d
		}
	}
}

// WithFactory sets the factory used to create glyphs. The factory must
// produce grids of the configured size.
func WithFactory(f glyph.Factory) Option {
	return func(s *Session) {
		if f != nil {
			s.factory = f
		}
	}
}

// Session is the state of one editing session.
type Session struct {
	id  string
	cfg Config

	factory   glyph.Factory
	store     *glyph.Store
	history   *history.History
	modes     *mode.Manager
	view      *viewport.Viewport
	strip     viewport.PreviewStrip
	describer charinfo.Describer

	current glyph.Codepoint

	selection *selection.CellSet
	preview   *selection.CellSet
	stroke    *edit.Stroke

	down         bool
	downX, downY float64
	lastX, lastY float64
	hovered      bool
	spaceHeld    bool

	listeners []ChangeListener

	// pending collects mode callbacks fired during an operation.
	pending Change
}

// New creates a session.
func New(cfg Config, opts ...Option) *Session {
	cfg = cfg.normalized()

	s := &Session{
		id:        uuid.New().String(),
		cfg:       cfg,
		factory:   glyph.NewFactory(cfg.GlyphWidth, cfg.GlyphHeight),
		history:   history.New(cfg.HistoryLimit),
		modes:     mode.NewManager(),
		current:   cfg.StartCodepoint,
		selection: selection.NewCellSet(),
		stroke:    edit.NewStroke(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.describer == nil {
		s.describer = charinfo.NewRuneDescriber(nil)
	}

	s.store = glyph.NewStore(s.factory)

	s.view = viewport.New(cfg.CanvasWidth, cfg.CanvasHeight, cfg.GlyphWidth, cfg.GlyphHeight)
	s.view.Zoom = cfg.Zoom
	s.view.MinZoom = cfg.MinZoom
	s.view.MaxZoom = cfg.MaxZoom

	s.strip = viewport.PreviewStrip{
		GlyphWidth:  cfg.GlyphWidth,
		GlyphHeight: cfg.GlyphHeight,
		Scale:       cfg.PreviewScale,
	}

	s.modes.SetPersistent(cfg.Mode)
	s.modes.SetOperation(cfg.Operation)
	s.modes.OnChange(func(from, to mode.State) {
		s.pending |= ChangeMode
	})
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Store returns the glyph store.
func (s *Session) Store() *glyph.Store { return s.store }

// History returns the undo history.
func (s *Session) History() *history.History { return s.history }

// Viewport returns the viewport. Callers must not modify it.
func (s *Session) Viewport() *viewport.Viewport { return s.view }

// PreviewStrip returns the preview strip geometry.
func (s *Session) PreviewStrip() viewport.PreviewStrip { return s.strip }

// Codepoint returns the codepoint being edited.
func (s *Session) Codepoint() glyph.Codepoint { return s.current }

// Glyph returns the grid of the current codepoint, or nil if the glyph
// does not exist.
func (s *Session) Glyph() *glyph.Grid { return s.store.Get(s.current) }

// Mode returns the effective interaction mode.
func (s *Session) Mode() mode.Mode { return s.modes.Current() }

// ModeState returns the full mode state.
func (s *Session) ModeState() mode.State { return s.modes.State() }

// Operation returns the current edit operation.
func (s *Session) Operation() edit.Operation { return s.modes.Operation() }

// Hovered reports whether the pointer is over the canvas.
func (s *Session) Hovered() bool { return s.hovered }

// Down reports whether a stroke is in progress.
func (s *Session) Down() bool { return s.down }

// HoverCell returns the cell under the last pointer position.
func (s *Session) HoverCell() selection.Cell {
	return s.view.CellAt(s.lastX, s.lastY)
}

// SpaceHeld reports whether the sticky pan key is active.
func (s *Session) SpaceHeld() bool { return s.spaceHeld }

// OnChange registers a listener called after every operation that changed
// glyph, selection, view, mode or codepoint state.
func (s *Session) OnChange(fn ChangeListener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Session) emit(c Change) {
	c |= s.pending
	s.pending = ChangeNone
	if c == ChangeNone {
		return
	}
	for _, fn := range s.listeners {
		fn(c)
	}
}

// Selection returns the selection to display: the drag preview while a
// drag is in progress, else the persisted selection.
func (s *Session) Selection() *selection.CellSet {
	if s.preview != nil {
		return s.preview
	}
	return s.selection
}

// Dragging reports whether a drag preview is active.
func (s *Session) Dragging() bool { return s.preview != nil }

// PointerDown starts a stroke.
func (s *Session) PointerDown(p Pointer) {
	s.down = true
	s.hovered = true
	s.downX, s.downY = p.X, p.Y
	s.lastX, s.lastY = p.X, p.Y
	s.stroke.Reset()
	s.view.BeginPan()

	var ch Change
	switch {
	case p.Button == ButtonRight:
		s.modes.SetOverride(mode.None)
	case s.strip.Contains(s.view.CanvasHeight, p.Y):
		s.modes.SetOverride(mode.None)
		if s.navigate(s.strip.Offset(s.view.CanvasWidth, p.X)) {
			ch |= ChangeCodepoint
		}
	case p.Space || s.spaceHeld || p.Button == ButtonMiddle:
		s.modes.SetOverride(mode.Move)
	}

	if s.modes.Current() == mode.Draw {
		ch |= s.applyAt(p.X, p.Y)
	}
	s.emit(ch)
}

// PointerMove continues a stroke. Moves without a pressed button only
// update the hover position.
func (s *Session) PointerMove(p Pointer) {
	s.hovered = true
	s.lastX, s.lastY = p.X, p.Y
	if !s.down {
		return
	}

	var ch Change
	switch s.modes.Current() {
	case mode.Move:
		if s.view.PanTo(p.X-s.downX, p.Y-s.downY) {
			ch |= ChangeView
		}
	case mode.Draw:
		ch |= s.applyAt(p.X, p.Y)
	case mode.Drag:
		s.preview = transform.Preview(s.selection, s.dragDelta(p.X, p.Y), s.cfg.GlyphWidth, s.cfg.GlyphHeight)
		ch |= ChangeSelection
	}
	s.emit(ch)
}

// PointerUp ends a stroke.
func (s *Session) PointerUp(p Pointer) {
	s.lastX, s.lastY = p.X, p.Y
	if !s.down {
		return
	}
	s.emit(s.finish(p.X, p.Y))
}

// PointerLeave marks the pointer as outside the canvas. A stroke in
// progress is finished at the last known position.
func (s *Session) PointerLeave() {
	s.hovered = false
	if !s.down {
		s.emit(ChangeNone)
		return
	}
	s.emit(s.finish(s.lastX, s.lastY))
}

func (s *Session) finish(x, y float64) Change {
	s.down = false

	var ch Change
	switch s.modes.Current() {
	case mode.Drag:
		ch |= s.commitDrag(x, y)
		s.commitHistory()
	case mode.Draw:
		s.commitHistory()
	}

	s.view.EndPan()
	s.modes.ClearOverride()
	if s.preview != nil {
		s.preview = nil
		ch |= ChangeSelection
	}
	return ch
}

// applyAt runs the current operation on the cell under (x, y).
func (s *Session) applyAt(x, y float64) Change {
	res := s.stroke.Apply(s.modes.Operation(), s.target(), s.view.CellAt(x, y))
	var ch Change
	if res.Changed {
		ch |= ChangeGlyph
	}
	if res.Selection {
		ch |= ChangeSelection
	}
	return ch
}

func (s *Session) target() edit.Target {
	return edit.Target{Store: s.store, Codepoint: s.current, Selection: s.selection}
}

func (s *Session) dragDelta(x, y float64) transform.Delta {
	dx, dy := s.view.Delta(s.downX, s.downY, x, y)
	return transform.Delta{DX: dx, DY: dy}
}

func (s *Session) commitDrag(x, y float64) Change {
	d := s.dragDelta(x, y)
	if d.IsZero() || s.selection.Len() == 0 {
		return ChangeNone
	}

	g := s.store.Get(s.current)
	s.selection = transform.Commit(g, s.selection, d, s.cfg.GlyphWidth, s.cfg.GlyphHeight)

	ch := ChangeSelection
	if g != nil {
		ch |= ChangeGlyph
	}
	return ch
}

// commitHistory snapshots the current glyph if it changed since the last
// snapshot. It reports whether an entry was added.
func (s *Session) commitHistory() bool {
	return s.history.Commit(s.current, s.store.Get(s.current))
}

// Commit records the current glyph in the undo history if it changed.
// Scripted edits call it once after a batch of pixel writes.
func (s *Session) Commit() bool {
	return s.commitHistory()
}

// Undo reverts the last recorded change to the current glyph. Undoing the
// first recorded change deletes the glyph. The live grid is overwritten in
// place when it exists.
func (s *Session) Undo() history.OutcomeKind {
	out := s.history.Undo(s.current)
	switch out.Kind {
	case history.Restored:
		if g := s.store.Get(s.current); g == nil || !g.CopyFrom(out.Snapshot) {
			if err := s.store.Put(s.current, out.Snapshot); err != nil {
				// Snapshots are taken from store grids and always fit.
				panic(fmt.Sprintf("editor: restoring %v: %v", s.current, err))
			}
		}
		s.emit(ChangeGlyph)
	case history.Deleted:
		s.store.Delete(s.current)
		s.emit(ChangeGlyph)
	}
	return out.Kind
}

// Jump switches to codepoint cp.
func (s *Session) Jump(cp glyph.Codepoint) error {
	if !cp.Valid() {
		return fmt.Errorf("%w: %v", ErrCodepointRange, cp)
	}
	if cp == s.current {
		return nil
	}
	s.switchTo(cp)
	s.emit(ChangeCodepoint | ChangeGlyph)
	return nil
}

// JumpInput parses the jump box input and switches to the codepoint.
func (s *Session) JumpInput(input string) error {
	cp, err := charinfo.ParseJump(input)
	if err != nil {
		return err
	}
	return s.Jump(cp)
}

// Navigate moves by offset codepoints. Offsets leaving the editable range
// are ignored. It reports whether the codepoint changed.
func (s *Session) Navigate(offset int) bool {
	if !s.navigate(offset) {
		return false
	}
	s.emit(ChangeCodepoint | ChangeGlyph)
	return true
}

func (s *Session) navigate(offset int) bool {
	if offset == 0 {
		return false
	}
	cp, ok := s.current.Offset(offset)
	if !ok {
		return false
	}
	s.switchTo(cp)
	return true
}

// switchTo changes the current codepoint. A draw stroke in progress is
// recorded against the glyph it was drawn on.
func (s *Session) switchTo(cp glyph.Codepoint) {
	if s.down && s.stroke.Changed() {
		s.commitHistory()
	}
	s.stroke.Reset()
	s.current = cp
}

// SetOperation sets the edit operation.
func (s *Session) SetOperation(op edit.Operation) {
	s.modes.SetOperation(op)
	s.emit(ChangeNone)
}

// SetMode sets the persistent interaction mode.
func (s *Session) SetMode(m mode.Mode) {
	s.modes.SetPersistent(m)
	s.emit(ChangeNone)
}

// SetSpaceHeld sets the sticky pan key state.
func (s *Session) SetSpaceHeld(held bool) {
	if s.spaceHeld == held {
		return
	}
	s.spaceHeld = held
	s.emit(ChangeMode)
}

// DeselectAll clears the selection.
func (s *Session) DeselectAll() {
	if s.selection.Len() == 0 && s.preview == nil {
		return
	}
	s.selection.Clear()
	s.preview = nil
	s.emit(ChangeSelection)
}

// Wheel zooms by a wheel delta. Positive deltas zoom out.
func (s *Session) Wheel(deltaY float64) {
	if s.view.ZoomBy(deltaY) {
		s.emit(ChangeView)
	}
}

// Resize changes the canvas size.
func (s *Session) Resize(width, height float64) {
	if width == s.view.CanvasWidth && height == s.view.CanvasHeight {
		return
	}
	s.view.Resize(width, height)
	s.emit(ChangeView)
}

// Info returns the info line for the current codepoint.
func (s *Session) Info() string {
	return charinfo.Format(s.current, s.describer.Describe(s.current))
}
