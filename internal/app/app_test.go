package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matteosandrin/online-pixel-font-creator/internal/config/watcher"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
)

// On an 80x40 terminal the 8x8 glyph at zoom 1 has cell (x, y) at column
// 24+4x, row 12+2y. The preview strip starts at row 29.
const (
	termW, termH = 80, 40
)

func cellPos(x, y int) (col, row int) { return 24 + 4*x, 12 + 2*y }

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.UserConfigDir == "" {
		opts.UserConfigDir = t.TempDir()
	}
	app, err := New(context.Background(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { app.Close() })

	nb := backend.NewNullBackend(termW, termH)
	if err := nb.Init(); err != nil {
		t.Fatal(err)
	}
	app.backend = nb
	app.renderer = renderer.New(nb, app.theme)
	app.session.Resize(app.renderer.Layout().CanvasSize())
	return app, nb
}

func runeKey(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func specialKey(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func mouse(col, row int, b backend.MouseButton) backend.Event {
	return backend.Event{Type: backend.EventMouse, MouseX: col, MouseY: row, MouseButton: b}
}

func send(t *testing.T, app *Application, evs ...backend.Event) {
	t.Helper()
	for _, ev := range evs {
		if err := app.handleBackendEvent(ev); err != nil {
			t.Fatalf("event %+v: %v", ev, err)
		}
	}
}

func TestDrawStroke(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	s := app.Session()

	c0, r0 := cellPos(0, 0)
	c1, r1 := cellPos(1, 0)
	send(t, app,
		mouse(c0, r0, backend.MouseLeft),
		mouse(c1, r1, backend.MouseLeft),
		mouse(c1, r1, backend.MouseNone),
	)

	if !s.Pixel(0, 0) || !s.Pixel(1, 0) {
		t.Error("stroke should set (0,0) and (1,0)")
	}
	if s.Down() {
		t.Error("stroke should be finished")
	}
	if n := s.History().Len(s.Codepoint()); n != 1 {
		t.Errorf("history entries = %d, want 1", n)
	}
}

func TestRightButtonDoesNotDraw(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	c, r := cellPos(2, 2)
	send(t, app, mouse(c, r, backend.MouseRight))

	if app.Session().Mode() != mode.None {
		t.Errorf("mode = %v, want none", app.Session().Mode())
	}
	send(t, app, mouse(c, r, backend.MouseNone))
	if app.Session().Glyph() != nil {
		t.Error("right button should not create a glyph")
	}
}

func TestLeavingCanvasFinishesStroke(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	s := app.Session()

	c, r := cellPos(0, 0)
	send(t, app,
		mouse(c, r, backend.MouseLeft),
		mouse(c, 0, backend.MouseLeft),
	)
	if s.Down() || s.Hovered() {
		t.Error("leaving the canvas should end the stroke")
	}
	if n := s.History().Len(s.Codepoint()); n != 1 {
		t.Errorf("history entries = %d, want 1", n)
	}

	// Releasing outside does nothing more.
	send(t, app, mouse(c, 0, backend.MouseNone))
	if !s.Pixel(0, 0) {
		t.Error("pixel should stay set")
	}
}

func TestPreviewStripClick(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	send(t, app, mouse(70, 35, backend.MouseLeft), mouse(70, 35, backend.MouseNone))

	if got := app.Session().Codepoint(); got != 'B' {
		t.Errorf("codepoint = %v, want B", got)
	}
}

func TestWheelZoom(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	send(t, app, mouse(40, 20, backend.MouseWheelUp))

	if z := app.Session().Viewport().Zoom; z != 1.25 {
		t.Errorf("zoom = %v, want 1.25", z)
	}
	if app.button != backend.MouseNone {
		t.Error("wheel should not count as a held button")
	}
}

func TestKeyActions(t *testing.T) {
	tests := []struct {
		name  string
		ev    backend.Event
		check func(*Application) bool
	}{
		{"set one", runeKey('2'), func(a *Application) bool { return a.Session().Operation() == edit.OpSetOne }},
		{"deselect op", runeKey('5'), func(a *Application) bool { return a.Session().Operation() == edit.OpDeselect }},
		{"move mode", runeKey('t'), func(a *Application) bool { return a.Session().Mode() == mode.Move }},
		{"drag mode", runeKey('g'), func(a *Application) bool { return a.Session().Mode() == mode.Drag }},
		{"next glyph", runeKey(']'), func(a *Application) bool { return a.Session().Codepoint() == 'B' }},
		{"previous glyph", specialKey(backend.KeyLeft), func(a *Application) bool { return a.Session().Codepoint() == '@' }},
		{"pan hold", runeKey(' '), func(a *Application) bool { return a.Session().SpaceHeld() }},
		{"zoom in", runeKey('+'), func(a *Application) bool { return a.Session().Viewport().Zoom == 2 }},
		{"zoom out", runeKey('-'), func(a *Application) bool { return a.Session().Viewport().Zoom == 0 }},
		{"unbound", runeKey('~'), func(a *Application) bool { return a.Session().Codepoint() == 'A' }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, Options{})
			send(t, app, tt.ev)
			if !tt.check(app) {
				t.Errorf("state not updated after %+v", tt.ev)
			}
		})
	}
}

func TestUndoKey(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	s := app.Session()

	send(t, app, runeKey('u'))
	if msg, _ := app.renderer.StatusLine().Message(); msg != "nothing to undo" {
		t.Errorf("message = %q", msg)
	}

	c, r := cellPos(3, 3)
	send(t, app,
		mouse(c, r, backend.MouseLeft),
		mouse(c, r, backend.MouseNone),
		backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'z', Mod: backend.ModCtrl},
	)
	if s.Glyph() != nil {
		t.Error("undoing the only entry should delete the glyph")
	}
}

func TestUndoKeyStopsAtTrimmedHistory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.toml"), "[editor]\nhistoryLimit = 1\n")
	app, _ := newTestApp(t, Options{UserConfigDir: dir})
	s := app.Session()

	for _, x := range []int{1, 2} {
		c, r := cellPos(x, 1)
		send(t, app, mouse(c, r, backend.MouseLeft), mouse(c, r, backend.MouseNone))
	}

	send(t, app, runeKey('u'))
	if msg, _ := app.renderer.StatusLine().Message(); msg != "nothing to undo" {
		t.Errorf("message = %q", msg)
	}
	g := s.Glyph()
	if g == nil || !g.Get(1, 1) || !g.Get(2, 1) {
		t.Errorf("glyph after undo at trimmed history:\n%s", g)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
	}{
		{"q", runeKey('q')},
		{"ctrl+c", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'c', Mod: backend.ModCtrl}},
		{"closed", backend.Event{Type: backend.EventClosed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, Options{})
			if err := app.handleBackendEvent(tt.ev); !errors.Is(err, ErrQuit) {
				t.Errorf("err = %v, want ErrQuit", err)
			}
		})
	}
}

func TestJumpPrompt(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	sl := app.renderer.StatusLine()

	send(t, app, runeKey('/'))
	if !sl.PromptActive() {
		t.Fatal("prompt should open")
	}
	for _, r := range "U+00E9x" {
		send(t, app, runeKey(r))
	}
	send(t, app, specialKey(backend.KeyBackspace), specialKey(backend.KeyEnter))

	if sl.PromptActive() {
		t.Error("prompt should close on Enter")
	}
	if got := app.Session().Codepoint(); got != 0xE9 {
		t.Errorf("codepoint = %v, want U+00E9", got)
	}
}

func TestJumpPromptErrors(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	send(t, app, runeKey('/'))
	for _, r := range "20000" {
		send(t, app, runeKey(r))
	}
	err := app.handleBackendEvent(specialKey(backend.KeyEnter))

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "jump" {
		t.Fatalf("err = %v, want jump OperationError", err)
	}
	if app.Session().Codepoint() != 'A' {
		t.Error("codepoint should not change")
	}

	send(t, app, runeKey('/'), runeKey('z'), specialKey(backend.KeyEscape))
	if app.renderer.StatusLine().PromptActive() || app.Session().Codepoint() != 'A' {
		t.Error("Escape should cancel the prompt")
	}
}

func TestResize(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	send(t, app, backend.Event{Type: backend.EventResize, Width: 100, Height: 50})

	v := app.Session().Viewport()
	if v.CanvasWidth != 50 || v.CanvasHeight != 48 {
		t.Errorf("canvas = %vx%v, want 50x48", v.CanvasWidth, v.CanvasHeight)
	}
}

func TestFocusLossEndsStroke(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	c, r := cellPos(1, 1)
	send(t, app,
		mouse(c, r, backend.MouseLeft),
		backend.Event{Type: backend.EventFocus, Focused: false},
	)
	if app.Session().Down() {
		t.Error("focus loss should end the stroke")
	}
}

func TestStartCodepointOption(t *testing.T) {
	app, _ := newTestApp(t, Options{Codepoint: "é"})
	if got := app.Session().Codepoint(); got != glyph.Codepoint(0xE9) {
		t.Errorf("codepoint = %v, want U+00E9", got)
	}
}

func TestBadKeymapFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.toml"), "[keymap]\nx = \"no.such.action\"\n")

	app, _ := newTestApp(t, Options{UserConfigDir: dir})
	if _, ok := app.Keymap().Lookup(convertToKeyEvent(runeKey('q'))); !ok {
		t.Error("default bindings should remain")
	}
}

func TestConfigReload(t *testing.T) {
	dir := t.TempDir()
	app, _ := newTestApp(t, Options{UserConfigDir: dir})

	path := filepath.Join(dir, "settings.toml")
	writeFile(t, path, "[keymap]\nx = \"app.quit\"\n")
	app.reloadConfig(watcher.Event{Path: path, Op: watcher.OpCreate})

	if msg, _ := app.renderer.StatusLine().Message(); msg != "settings reloaded" {
		t.Errorf("message = %q", msg)
	}
	if err := app.handleBackendEvent(runeKey('x')); !errors.Is(err, ErrQuit) {
		t.Errorf("x should quit after reload, got %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "init.lua"), `glyph.set(0, 0, true)`)

	app, err := New(context.Background(), Options{UserConfigDir: dir, Scripts: []string{"init.lua"}})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	nb := backend.NewNullBackend(termW, termH)
	if err := app.SetBackend(nb); err != nil {
		t.Fatal(err)
	}
	nb.PostEvent(runeKey(']'))
	nb.PostEvent(runeKey('q'))

	errc := make(chan error, 1)
	go func() { errc <- app.Run(context.Background()) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		app.Shutdown()
		t.Fatal("Run did not return")
	}

	s := app.Session()
	if s.Codepoint() != 'B' {
		t.Errorf("codepoint = %v, want B", s.Codepoint())
	}
	if !s.Store().Get('A').Get(0, 0) {
		t.Error("startup script should have drawn on A")
	}
	if nb.Shows() == 0 {
		t.Error("no frame was drawn")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(context.Background(), Options{UserConfigDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if err := app.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("err = %v, want ErrNoBackend", err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := New(context.Background(), Options{
		UserConfigDir: t.TempDir(),
		ConfigPath:    filepath.Join(t.TempDir(), "missing.toml"),
	})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "config" {
		t.Errorf("err = %v, want config InitError", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
