package plugin

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/matteosandrin/online-pixel-font-creator/internal/plugin/lua"
)

// ErrManagerClosed is returned when running scripts after Close.
var ErrManagerClosed = errors.New("plugin manager is closed")

// Manager runs scripts against one editor session.
type Manager struct {
	mu sync.Mutex

	runner  *lua.Runner
	baseDir string
	ran     []string
	closed  bool
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	baseDir string
	timeout time.Duration
	output  io.Writer
}

// WithBaseDir sets the directory relative script paths resolve against.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithTimeout bounds each script run.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithOutput receives script print output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewManager creates a manager bound to ed.
func NewManager(ed lua.Editor, opts ...Option) *Manager {
	o := options{timeout: lua.DefaultExecutionTimeout, output: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		runner:  lua.NewRunner(ed, lua.WithExecutionTimeout(o.timeout), lua.WithOutput(o.output)),
		baseDir: o.baseDir,
	}
}

// Resolve returns the path a script is loaded from.
func (m *Manager) Resolve(path string) string {
	if filepath.IsAbs(path) || m.baseDir == "" {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// Run executes scripts in order. A failing script does not stop the
// rest; all failures are returned joined.
func (m *Manager) Run(ctx context.Context, scripts []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}

	var errs []error
	for _, s := range scripts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		path := m.Resolve(s)
		if err := m.runner.RunFile(ctx, path); err != nil {
			errs = append(errs, err)
			continue
		}
		m.ran = append(m.ran, path)
	}
	return errors.Join(errs...)
}

// RunString executes inline code.
func (m *Manager) RunString(ctx context.Context, name, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}
	return m.runner.RunString(ctx, name, code)
}

// Ran returns the paths of scripts that completed successfully.
func (m *Manager) Ran() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ran...)
}

// Close releases the scripting state.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	return m.runner.Close()
}
