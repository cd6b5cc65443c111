// Package app wires the glyph editor together: configuration, the editing
// session, key bindings, the terminal renderer and startup scripts. It
// owns the main event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/matteosandrin/online-pixel-font-creator/internal/charinfo"
	"github.com/matteosandrin/online-pixel-font-creator/internal/config"
	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/keymap"
	"github.com/matteosandrin/online-pixel-font-creator/internal/plugin"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/statusline"
)

// Application is the glyph editor process.
type Application struct {
	mu sync.Mutex

	config   *config.Config
	settings config.Settings

	session  *editor.Session
	keymap   *keymap.Keymap
	theme    renderer.Theme
	plugins  *plugin.Manager
	renderer *renderer.Renderer
	backend  backend.Backend

	logger  *Logger
	logFile io.Closer

	// Jump prompt state.
	prompt []rune

	// Last non-wheel mouse button seen and whether the pointer was over
	// the canvas.
	button   backend.MouseButton
	inCanvas bool

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is an extra settings file. It must exist when set.
	ConfigPath string

	// UserConfigDir overrides the user settings directory.
	UserConfigDir string

	// LogLevel overrides logging.level.
	LogLevel string

	// Codepoint overrides editor.startCodepoint. It accepts jump input
	// such as "U+00E9" or "é".
	Codepoint string

	// Scripts run after plugins.scripts.
	Scripts []string

	// Watch reloads settings files when they change.
	Watch bool

	// LogOutput receives logs when logging.file is not set.
	LogOutput io.Writer
}

// New loads configuration and builds the editing session.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}
	if err := app.bootstrap(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap(ctx context.Context) error {
	cfgOpts := []config.Option{config.WithWatcher(app.opts.Watch)}
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(app.opts.ConfigPath))
	}
	if app.opts.UserConfigDir != "" {
		cfgOpts = append(cfgOpts, config.WithUserConfigDir(app.opts.UserConfigDir))
	}
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(ctx); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	if app.opts.Codepoint != "" {
		if err := app.config.SetArg("editor.startCodepoint", app.opts.Codepoint); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}
	if app.opts.LogLevel != "" {
		if err := app.config.SetArg("logging.level", app.opts.LogLevel); err != nil {
			return &InitError{Component: "config", Err: err}
		}
	}

	// Invalid values fall back to defaults; report them once logging is up.
	settings, settingsErr := app.config.Settings()
	app.settings = settings

	if err := app.initLogger(settings.Logging); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logSettingsErrors(settingsErr)

	blocks := charinfo.DefaultBlocks()
	if settings.Unicode.BlocksFile != "" {
		b, err := charinfo.LoadBlocks(settings.Unicode.BlocksFile)
		if err != nil {
			return &InitError{Component: "unicode", Err: err}
		}
		blocks = b
	}

	app.session = editor.New(settings.EditorConfig(), editor.WithDescriber(charinfo.NewRuneDescriber(blocks)))
	app.keymap = app.loadKeymap(settings.Keymap)
	app.theme = app.loadTheme(settings.Theme)

	app.plugins = plugin.NewManager(app.session,
		plugin.WithBaseDir(app.config.UserConfigDir()),
		plugin.WithOutput(app.Logger().WithComponent("script").Writer(LogLevelInfo)),
	)

	app.Logger().Info("session %s editing %v", app.session.ID(), app.session.Codepoint())
	return nil
}

func (app *Application) initLogger(s config.LoggingSettings) error {
	out := app.opts.LogOutput
	if s.File != "" {
		f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(s.Level)
	if out != nil {
		cfg.Output = out
	}
	app.logger = NewLogger(cfg)
	return nil
}

func (app *Application) logSettingsErrors(err error) {
	if err == nil {
		return
	}
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			app.Logger().WithComponent("config").Warn("%v", e)
		}
		return
	}
	app.logComponentError("config", err)
}

// loadKeymap applies overrides to the default bindings. Bad overrides are
// logged and the defaults are used.
func (app *Application) loadKeymap(overrides map[string]string) *keymap.Keymap {
	km, err := keymap.Load(overrides)
	if err != nil {
		app.logComponentError("keymap", err)
		return keymap.Default()
	}
	return km
}

func (app *Application) loadTheme(colors map[string]string) renderer.Theme {
	t, err := renderer.ThemeFromHex(colors)
	if err != nil {
		app.logComponentError("theme", err)
	}
	return t
}

// SetBackend sets the terminal backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend, runs startup scripts and processes events
// until the user quits, ctx is cancelled or Shutdown is called.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b, app.theme)
	app.session.Resize(app.renderer.Layout().CanvasSize())
	app.session.OnChange(func(editor.Change) { app.renderer.MarkDirty() })

	app.runScripts(ctx)

	return app.eventLoop(ctx)
}

// runScripts runs configured and command line scripts. Failures are
// logged and shown; the editor still starts.
func (app *Application) runScripts(ctx context.Context) {
	scripts := append(append([]string(nil), app.settings.Plugins.Scripts...), app.opts.Scripts...)
	if len(scripts) == 0 {
		return
	}
	if err := app.plugins.Run(ctx, scripts); err != nil {
		app.logComponentError("script", err)
		app.showError(err)
		return
	}
	app.Logger().Info("ran %d scripts", len(scripts))
}

// Shutdown stops the event loop.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
}

// Close releases configuration watchers, scripts and the log file.
func (app *Application) Close() error {
	var errs []error
	if app.plugins != nil {
		errs = append(errs, app.plugins.Close())
	}
	if app.config != nil {
		errs = append(errs, app.config.Close())
	}
	if app.logFile != nil {
		errs = append(errs, app.logFile.Close())
		app.logFile = nil
	}
	return errors.Join(errs...)
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool { return app.running.Load() }

// Config returns the configuration.
func (app *Application) Config() *config.Config { return app.config }

// Settings returns the settings in effect.
func (app *Application) Settings() config.Settings { return app.settings }

// Session returns the editing session.
func (app *Application) Session() *editor.Session { return app.session }

// Keymap returns the key bindings.
func (app *Application) Keymap() *keymap.Keymap { return app.keymap }

// Renderer returns the renderer. It is nil until Run starts.
func (app *Application) Renderer() *renderer.Renderer { return app.renderer }

// Plugins returns the script manager.
func (app *Application) Plugins() *plugin.Manager { return app.plugins }

func (app *Application) showError(err error) {
	if app.renderer == nil {
		return
	}
	app.renderer.StatusLine().SetMessage(err.Error(), statusline.MessageError)
	app.renderer.MarkDirty()
}

func (app *Application) showInfo(format string, args ...any) {
	if app.renderer == nil {
		return
	}
	app.renderer.StatusLine().SetMessage(fmt.Sprintf(format, args...), statusline.MessageInfo)
	app.renderer.MarkDirty()
}
