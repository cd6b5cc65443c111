package plugin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/plugin/lua"
)

func writeScript(t *testing.T, dir, name, code string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManagerRun(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.lua", `glyph.set(0, 0, true)`)
	writeScript(t, dir, "bad.lua", `error("nope")`)
	abs := writeScript(t, dir, "b.lua", `glyph.set(1, 0, true); print("done")`)

	var out bytes.Buffer
	s := editor.New(editor.DefaultConfig())
	m := NewManager(s, WithBaseDir(dir), WithOutput(&out))
	defer m.Close()

	err := m.Run(context.Background(), []string{"a.lua", "bad.lua", abs})

	var se *lua.ScriptError
	if !errors.As(err, &se) || se.Script != filepath.Join(dir, "bad.lua") {
		t.Fatalf("err = %v, want ScriptError for bad.lua", err)
	}
	if !s.Pixel(0, 0) || !s.Pixel(1, 0) {
		t.Error("scripts around the failure should still run")
	}
	if got := m.Ran(); len(got) != 2 {
		t.Errorf("Ran = %v, want 2 entries", got)
	}
	if out.String() != "done\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestManagerResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"relative", "/cfg", "x.lua", filepath.Join("/cfg", "x.lua")},
		{"absolute", "/cfg", "/abs/x.lua", "/abs/x.lua"},
		{"no base", "", "x.lua", "x.lua"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(editor.New(editor.DefaultConfig()), WithBaseDir(tt.base))
			defer m.Close()
			if got := m.Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestManagerCancelled(t *testing.T) {
	m := NewManager(editor.New(editor.DefaultConfig()))
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Run(ctx, []string{"x.lua"}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want Canceled", err)
	}
}

func TestManagerClosed(t *testing.T) {
	m := NewManager(editor.New(editor.DefaultConfig()))
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(context.Background(), nil); !errors.Is(err, ErrManagerClosed) {
		t.Errorf("Run err = %v", err)
	}
	if err := m.RunString(context.Background(), "x", ""); !errors.Is(err, ErrManagerClosed) {
		t.Errorf("RunString err = %v", err)
	}
}
