package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// memFS is an in-memory FileSystem.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return memInfo(path), nil
}

type memInfo string

func (i memInfo) Name() string       { return string(i) }
func (i memInfo) Size() int64        { return 0 }
func (i memInfo) Mode() fs.FileMode  { return 0o644 }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return false }
func (i memInfo) Sys() any           { return nil }

func TestTOMLLoader(t *testing.T) {
	fsys := memFS{"/settings.toml": `
[glyph]
width = 12
height = 16

[view]
zoom = 4.5

[keymap]
"x" = "operation.xor"
`}

	data, err := NewTOMLLoader(fsys, "/settings.toml").Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	glyph := data["glyph"].(map[string]any)
	if glyph["width"] != int64(12) {
		t.Errorf("glyph.width = %#v, want int64(12)", glyph["width"])
	}
	if data["view"].(map[string]any)["zoom"] != 4.5 {
		t.Errorf("view.zoom = %v", data["view"])
	}
	if data["keymap"].(map[string]any)["x"] != "operation.xor" {
		t.Errorf("keymap = %v", data["keymap"])
	}
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	data, err := NewTOMLLoader(memFS{}, "/nope.toml").Load()
	if err != nil || data != nil {
		t.Errorf("Load = %v, %v; want nil, nil", data, err)
	}
}

func TestTOMLParseError(t *testing.T) {
	_, err := ParseTOML("bad.toml", []byte("[glyph]\nwidth = = 3\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != "bad.toml" || perr.Line != 2 {
		t.Errorf("ParseError = %+v, want line 2 of bad.toml", perr)
	}
}

func TestYAMLLoader(t *testing.T) {
	fsys := memFS{"/settings.yaml": `
glyph:
  width: 10
editor:
  operation: select
plugins:
  scripts: [a.lua, b.lua]
`}

	data, err := NewYAMLLoader(fsys, "/settings.yaml").Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if data["glyph"].(map[string]any)["width"] != 10 {
		t.Errorf("glyph.width = %#v", data["glyph"])
	}
	scripts := data["plugins"].(map[string]any)["scripts"].([]any)
	if len(scripts) != 2 || scripts[1] != "b.lua" {
		t.Errorf("plugins.scripts = %v", scripts)
	}
}

func TestYAMLParseError(t *testing.T) {
	_, err := ParseYAML("bad.yaml", []byte("glyph: [\n"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Path != "bad.yaml" {
		t.Errorf("error = %v, want *ParseError for bad.yaml", err)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"glyph": {"width": 12}, "view": {"zoom": 1.5}, "plugins": {"scripts": ["a.lua"]}}`)
	m, err := ParseJSON("s.json", data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	glyph := m["glyph"].(map[string]any)
	if w, ok := glyph["width"].(int); !ok || w != 12 {
		t.Errorf("glyph.width = %#v, want int 12", glyph["width"])
	}
	view := m["view"].(map[string]any)
	if z, ok := view["zoom"].(float64); !ok || z != 1.5 {
		t.Errorf("view.zoom = %#v, want 1.5", view["zoom"])
	}
	scripts := m["plugins"].(map[string]any)["scripts"].([]any)
	if len(scripts) != 1 || scripts[0] != "a.lua" {
		t.Errorf("scripts = %#v", scripts)
	}
}

func TestJSONParseError(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"glyph": `},
		{"not an object", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON("bad.json", []byte(tt.data))
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Path != "bad.json" {
				t.Errorf("error = %v, want *ParseError for bad.json", err)
			}
		})
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.YAML", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.json", FormatJSON},
		{"a.ini", FormatUnknown},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if _, err := ForFile(nil, "settings.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForFile(ini) error = %v", err)
	}
	if l, err := ForFile(nil, "settings.json"); err != nil {
		t.Errorf("ForFile(json) error = %v", err)
	} else if _, ok := l.(*JSONLoader); !ok {
		t.Errorf("ForFile(json) = %T", l)
	}
	if l, err := ForFile(nil, "settings.yml"); err != nil {
		t.Errorf("ForFile(yml) error = %v", err)
	} else if _, ok := l.(*YAMLLoader); !ok {
		t.Errorf("ForFile(yml) = %T", l)
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader("GLYPHED_")

	tests := []struct {
		env  string
		want string
	}{
		{"GLYPHED_VIEW_ZOOM", "view.zoom"},
		{"GLYPHED_VIEW_MIN_ZOOM", "view.minZoom"},
		{"GLYPHED_EDITOR_HISTORY_LIMIT", "editor.historyLimit"},
		{"GLYPHED_THEME_PIXEL_ON", "theme.pixelOn"},
		{"GLYPHED_LONELY", ""},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"off", false},
		{"42", int64(42)},
		{"-1.5", -1.5},
		{"draw", "draw"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}

	list, ok := parseValue(`["a.lua"]`).([]any)
	if !ok || len(list) != 1 {
		t.Errorf("parseValue(json list) = %#v", list)
	}
}

func TestEnvLoaderWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	content := "GLYPHED_VIEW_ZOOM=3\nGLYPHED_LOG_LEVEL=debug\nOTHER=1\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewEnvLoader("GLYPHED_").WithDotEnv(dotenv, filepath.Join(dir, ".env.local"))
	l.environ = func() []string {
		return []string{"GLYPHED_VIEW_ZOOM=6", "PATH=/bin", "GLYPHED_GLYPH_WIDTH=16"}
	}

	data, err := l.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	view := data["view"].(map[string]any)
	if view["zoom"] != int64(6) {
		t.Errorf("view.zoom = %#v, want process environment to win", view["zoom"])
	}
	if data["logging"].(map[string]any)["level"] != "debug" {
		t.Errorf("logging.level = %v, want value from .env", data["logging"])
	}
	if data["glyph"].(map[string]any)["width"] != int64(16) {
		t.Errorf("glyph.width = %v", data["glyph"])
	}
	if _, ok := data["other"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoaderBadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GLYPHED_X='unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewEnvLoader("").WithDotEnv(path)
	l.environ = func() []string { return nil }

	var perr *ParseError
	if _, err := l.Load(); !errors.As(err, &perr) {
		t.Errorf("Load error = %v, want *ParseError", err)
	}
}
