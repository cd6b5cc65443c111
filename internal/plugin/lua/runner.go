package lua

import (
	"context"
	"fmt"
	"os"
)

// Runner executes scripts against one Editor in a shared Lua state, so
// globals set by one script are visible to the next.
type Runner struct {
	state *State
	ed    Editor
}

// NewRunner creates a runner with the glyph module bound to ed.
func NewRunner(ed Editor, opts ...StateOption) *Runner {
	s := NewState(opts...)
	s.RegisterModule(ModuleName, (&glyphModule{ed: ed}).funcs())
	return &Runner{state: s, ed: ed}
}

// State returns the underlying Lua state.
func (r *Runner) State() *State { return r.state }

// RunString runs code labelled name. Pixel writes are committed to the
// undo history once the script ends, even when it fails.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	err := r.state.DoString(ctx, name, code)
	r.ed.Commit()
	if err != nil {
		return &ScriptError{Script: name, Err: err}
	}
	return nil
}

// RunFile reads and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ScriptError{Script: path, Err: fmt.Errorf("reading script: %w", err)}
	}
	return r.RunString(ctx, path, string(data))
}

// Close releases the Lua state.
func (r *Runner) Close() error {
	return r.state.Close()
}
