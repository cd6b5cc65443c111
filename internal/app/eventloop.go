package app

import (
	"context"
	"errors"

	"github.com/matteosandrin/online-pixel-font-creator/internal/config/watcher"
	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/key"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/keymap"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
)

// Zoom steps in wheel delta units. One key press zooms by a factor of 2.
const (
	wheelNotch = 250
	zoomKey    = 1000
)

const jumpLabel = "Jump to: "

// eventLoop processes backend events and configuration changes. Events
// are read on a separate goroutine since PollEvent blocks.
func (app *Application) eventLoop(ctx context.Context) error {
	events := make(chan backend.Event, 64)
	go app.poll(events)

	changes := app.config.Changes()
	watchErrs := app.config.WatchErrors()

	app.renderer.RenderIfDirty(app.session)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-app.done:
			return nil

		case ev := <-events:
			err := app.handleBackendEvent(ev)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				app.logComponentError("event", err)
				app.showError(err)
			}

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.reloadConfig(ev)

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.logComponentError("watcher", err)
		}

		app.renderer.RenderIfDirty(app.session)
	}
}

// poll forwards backend events until the backend closes or the loop ends.
func (app *Application) poll(out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		select {
		case out <- ev:
		case <-app.done:
			return
		}
		if ev.Type == backend.EventClosed {
			return
		}
	}
}

// handleBackendEvent routes one backend event. It returns ErrQuit when the
// application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev.Width, ev.Height)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	case backend.EventFocus:
		if !ev.Focused {
			app.button = backend.MouseNone
			app.inCanvas = false
			app.session.PointerLeave()
			app.renderer.MarkDirty()
		}
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

func (app *Application) handleResize(width, height int) {
	app.renderer.Resize(width, height)
	app.session.Resize(app.renderer.Layout().CanvasSize())
}

// handleKeyEvent feeds the jump prompt when it is open, else looks the key
// up in the keymap.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if app.renderer.StatusLine().PromptActive() {
		return app.handlePromptKey(ev)
	}

	app.renderer.StatusLine().ClearMessage()
	app.renderer.MarkDirty()

	action, ok := app.keymap.Lookup(convertToKeyEvent(ev))
	if !ok {
		return nil
	}
	app.Logger().Debug("action %s", action)
	return app.dispatch(action)
}

// dispatch runs a keymap action.
func (app *Application) dispatch(action keymap.Action) error {
	s := app.session
	switch action {
	case keymap.ActionOpXor:
		s.SetOperation(edit.OpXor)
	case keymap.ActionOpSetOne:
		s.SetOperation(edit.OpSetOne)
	case keymap.ActionOpSetZero:
		s.SetOperation(edit.OpSetZero)
	case keymap.ActionOpSelect:
		s.SetOperation(edit.OpSelect)
	case keymap.ActionOpDeselect:
		s.SetOperation(edit.OpDeselect)
	case keymap.ActionModeDraw:
		s.SetMode(mode.Draw)
	case keymap.ActionModeMove:
		s.SetMode(mode.Move)
	case keymap.ActionModeDrag:
		s.SetMode(mode.Drag)
	case keymap.ActionPanHold:
		s.SetSpaceHeld(!s.SpaceHeld())
	case keymap.ActionDeselectAll:
		s.DeselectAll()
	case keymap.ActionUndo:
		cp := s.Codepoint()
		if !s.History().CanUndo(cp) {
			app.showInfo("nothing to undo")
			return nil
		}
		if e := s.History().Latest(cp); e != nil {
			app.Logger().Debug("undo %v entry %s", cp, e.ID)
		}
		s.Undo()
	case keymap.ActionPrevGlyph:
		s.Navigate(-1)
	case keymap.ActionNextGlyph:
		s.Navigate(1)
	case keymap.ActionJump:
		app.openPrompt()
	case keymap.ActionZoomIn:
		s.Wheel(-zoomKey)
	case keymap.ActionZoomOut:
		s.Wheel(zoomKey)
	case keymap.ActionQuit:
		return ErrQuit
	}
	return nil
}

func (app *Application) openPrompt() {
	app.prompt = app.prompt[:0]
	sl := app.renderer.StatusLine()
	sl.SetPrompt(true, jumpLabel)
	sl.SetPromptBuffer("")
	app.renderer.MarkDirty()
}

func (app *Application) closePrompt() {
	app.prompt = app.prompt[:0]
	app.renderer.StatusLine().SetPrompt(false, "")
	app.renderer.MarkDirty()
}

// handlePromptKey edits the jump prompt. Enter jumps, Escape cancels.
func (app *Application) handlePromptKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape:
		app.closePrompt()
		return nil
	case backend.KeyEnter:
		input := string(app.prompt)
		app.closePrompt()
		if input == "" {
			return nil
		}
		if err := app.session.JumpInput(input); err != nil {
			return &OperationError{Op: "jump", Target: input, Err: err}
		}
		return nil
	case backend.KeyBackspace, backend.KeyDelete:
		if n := len(app.prompt); n > 0 {
			app.prompt = app.prompt[:n-1]
		}
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) {
			if ev.Rune == 'c' {
				app.closePrompt()
			}
			return nil
		}
		app.prompt = append(app.prompt, ev.Rune)
	default:
		return nil
	}
	app.renderer.StatusLine().SetPromptBuffer(string(app.prompt))
	app.renderer.MarkDirty()
	return nil
}

// handleMouseEvent turns terminal mouse reports, which carry the buttons
// currently held, into pointer down, move and up calls.
func (app *Application) handleMouseEvent(ev backend.Event) {
	defer app.renderer.MarkDirty()

	switch ev.MouseButton {
	case backend.MouseWheelUp:
		app.session.Wheel(-wheelNotch)
		return
	case backend.MouseWheelDown:
		app.session.Wheel(wheelNotch)
		return
	}

	prev, cur := app.button, ev.MouseButton
	app.button = cur

	x, y, ok := app.renderer.Layout().ToCanvas(ev.MouseX, ev.MouseY)
	if !ok {
		if app.inCanvas || app.session.Down() {
			app.session.PointerLeave()
		}
		app.inCanvas = false
		return
	}
	app.inCanvas = true

	p := editor.Pointer{X: x, Y: y, Button: pointerButton(cur)}
	switch {
	case prev == backend.MouseNone && cur != backend.MouseNone:
		app.session.PointerDown(p)
	case cur == backend.MouseNone && prev != backend.MouseNone:
		p.Button = pointerButton(prev)
		app.session.PointerUp(p)
	case cur != prev:
		up := p
		up.Button = pointerButton(prev)
		app.session.PointerUp(up)
		app.session.PointerDown(p)
	default:
		app.session.PointerMove(p)
	}
}

func pointerButton(b backend.MouseButton) editor.Button {
	switch b {
	case backend.MouseMiddle:
		return editor.ButtonMiddle
	case backend.MouseRight:
		return editor.ButtonRight
	default:
		return editor.ButtonLeft
	}
}

// reloadConfig re-reads a changed settings file and applies the parts that
// can change at runtime: key bindings and colours.
func (app *Application) reloadConfig(ev watcher.Event) {
	log := app.Logger().WithComponent("config")

	known, err := app.config.Reload(ev)
	if err != nil {
		log.Error("reloading %s: %v", ev.Path, err)
		app.showError(err)
		return
	}
	if !known {
		return
	}

	settings, err := app.config.Settings()
	app.logSettingsErrors(err)
	app.settings = settings

	app.keymap = app.loadKeymap(settings.Keymap)
	app.theme = app.loadTheme(settings.Theme)
	app.renderer.SetTheme(app.theme)

	log.Info("reloaded %s (%s)", ev.Path, ev.Op)
	app.showInfo("settings reloaded")
}

// convertToKeyEvent converts a backend key event for keymap lookup.
func convertToKeyEvent(ev backend.Event) key.Event {
	var mods key.Modifier
	if ev.Mod.Has(backend.ModShift) {
		mods |= key.ModShift
	}
	if ev.Mod.Has(backend.ModCtrl) {
		mods |= key.ModCtrl
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods |= key.ModAlt
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods |= key.ModMeta
	}

	if ev.Key == backend.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods).Normalize()
	}
	// backend and key share key numbering.
	return key.NewSpecialEvent(key.Key(ev.Key), mods)
}
