package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matteosandrin/online-pixel-font-creator/internal/charinfo"
	"github.com/matteosandrin/online-pixel-font-creator/internal/config/layer"
	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
	"github.com/matteosandrin/online-pixel-font-creator/internal/input/mode"
)

// MaxGlyphSize bounds glyph.width and glyph.height.
const MaxGlyphSize = 256

// Section accessors return snapshot structs. Mutating them does not modify
// the configuration.

// GlyphSettings is the glyph grid size.
type GlyphSettings struct {
	Width  int
	Height int
}

// ViewSettings controls the canvas view.
type ViewSettings struct {
	Zoom         float64
	MinZoom      float64
	MaxZoom      float64
	PreviewScale float64
}

// EditorSettings controls the initial editing state.
type EditorSettings struct {
	StartCodepoint glyph.Codepoint
	Operation      edit.Operation
	Mode           mode.Mode
	HistoryLimit   int
}

// LoggingSettings controls the log output.
type LoggingSettings struct {
	Level string
	File  string
}

// PluginSettings lists the Lua scripts run at startup.
type PluginSettings struct {
	Scripts []string
}

// UnicodeSettings configures codepoint metadata.
type UnicodeSettings struct {
	// BlocksFile replaces the built-in block table when set.
	BlocksFile string
}

// Settings is the typed view of the whole configuration.
type Settings struct {
	Glyph   GlyphSettings
	View    ViewSettings
	Editor  EditorSettings
	Logging LoggingSettings

	// Theme maps colour names to hex strings, all validated.
	Theme map[string]string

	// Keymap maps key specs to action names.
	Keymap map[string]string

	Plugins PluginSettings
	Unicode UnicodeSettings
}

// Settings decodes and validates the merged configuration. Every problem
// is reported; the returned Settings falls back to defaults for the
// offending values.
func (c *Config) Settings() (Settings, error) {
	r := &reader{data: c.Merged()}

	s := Settings{
		Glyph: GlyphSettings{
			Width:  r.intIn("glyph.width", 8, 1, MaxGlyphSize),
			Height: r.intIn("glyph.height", 8, 1, MaxGlyphSize),
		},
		View: ViewSettings{
			Zoom:         r.float("view.zoom", 1),
			MinZoom:      r.float("view.minZoom", -2),
			MaxZoom:      r.float("view.maxZoom", 4),
			PreviewScale: r.float("view.previewScale", 1),
		},
		Editor: EditorSettings{
			StartCodepoint: r.codepoint("editor.startCodepoint", 'A'),
			Operation:      r.operation("editor.operation"),
			Mode:           r.mode("editor.mode"),
			HistoryLimit:   r.intIn("editor.historyLimit", 0, 0, 1<<20),
		},
		Logging: LoggingSettings{
			Level: r.level("logging.level"),
			File:  r.str("logging.file", ""),
		},
		Theme:   r.theme("theme"),
		Keymap:  r.stringMap("keymap"),
		Plugins: PluginSettings{Scripts: r.strs("plugins.scripts")},
		Unicode: UnicodeSettings{BlocksFile: r.str("unicode.blocksFile", "")},
	}

	if s.View.MinZoom > s.View.MaxZoom {
		r.invalid("view.minZoom", s.View.MinZoom, "must not exceed view.maxZoom")
		s.View.MinZoom, s.View.MaxZoom = -2, 4
	}
	if s.View.PreviewScale < 0 {
		r.invalid("view.previewScale", s.View.PreviewScale, "must not be negative")
		s.View.PreviewScale = 0
	}

	if len(r.errs) > 0 {
		return s, r.errs
	}
	return s, nil
}

// EditorConfig converts the settings to session settings. Canvas size is
// left at the default; the host resizes the session once it knows it.
func (s Settings) EditorConfig() editor.Config {
	cfg := editor.DefaultConfig()
	cfg.GlyphWidth = s.Glyph.Width
	cfg.GlyphHeight = s.Glyph.Height
	cfg.Zoom = s.View.Zoom
	cfg.MinZoom = s.View.MinZoom
	cfg.MaxZoom = s.View.MaxZoom
	cfg.PreviewScale = s.View.PreviewScale
	cfg.StartCodepoint = s.Editor.StartCodepoint
	cfg.Operation = s.Editor.Operation
	cfg.Mode = s.Editor.Mode
	cfg.HistoryLimit = s.Editor.HistoryLimit
	return cfg
}

// reader pulls typed values out of a merged map, collecting errors.
type reader struct {
	data map[string]any
	errs ValidationErrors
}

func (r *reader) get(path string) (any, bool) {
	return layer.GetByPath(r.data, path)
}

func (r *reader) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *reader) invalid(path string, v any, msg string) {
	r.fail(&ValidationError{Path: path, Value: v, Message: msg})
}

func (r *reader) intIn(path string, def, lo, hi int) int {
	v, ok := r.get(path)
	if !ok {
		return def
	}
	n, err := toInt(path, v)
	if err != nil {
		r.fail(err)
		return def
	}
	if n < lo || n > hi {
		r.invalid(path, n, fmt.Sprintf("must be between %d and %d", lo, hi))
		return def
	}
	return n
}

func (r *reader) float(path string, def float64) float64 {
	v, ok := r.get(path)
	if !ok {
		return def
	}
	f, err := toFloat(path, v)
	if err != nil {
		r.fail(err)
		return def
	}
	return f
}

func (r *reader) str(path, def string) string {
	v, ok := r.get(path)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.fail(&TypeError{Path: path, Expected: "string", Actual: typeName(v)})
		return def
	}
	return s
}

func (r *reader) strs(path string) []string {
	v, ok := r.get(path)
	if !ok {
		return nil
	}
	out, err := toStrings(path, v)
	if err != nil {
		r.fail(err)
		return nil
	}
	return out
}

func (r *reader) stringMap(path string) map[string]string {
	v, ok := r.get(path)
	if !ok {
		return map[string]string{}
	}
	out, err := toStringMap(path, v)
	if err != nil {
		r.fail(err)
		return map[string]string{}
	}
	return out
}

// codepoint accepts an integer or a jump string such as "U+0041" or "A".
func (r *reader) codepoint(path string, def glyph.Codepoint) glyph.Codepoint {
	v, ok := r.get(path)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case string:
		cp, err := charinfo.ParseJump(val)
		if err != nil {
			r.invalid(path, val, err.Error())
			return def
		}
		return cp
	default:
		n, err := toInt(path, v)
		if err != nil {
			r.fail(err)
			return def
		}
		if n < int(glyph.MinCodepoint) || n > int(glyph.MaxCodepoint) {
			r.invalid(path, n, "codepoint out of range")
			return def
		}
		return glyph.Codepoint(n)
	}
}

func (r *reader) operation(path string) edit.Operation {
	s := r.str(path, "xor")
	op, err := edit.ParseOperation(s)
	if err != nil {
		r.invalid(path, s, "unknown operation")
		return edit.OpXor
	}
	return op
}

func (r *reader) mode(path string) mode.Mode {
	s := r.str(path, "draw")
	m, err := mode.Parse(s)
	if err != nil {
		r.invalid(path, s, "unknown mode")
		return mode.Draw
	}
	return m
}

func (r *reader) level(path string) string {
	s := strings.ToLower(r.str(path, "info"))
	switch s {
	case "debug", "info", "warn", "error":
		return s
	default:
		r.invalid(path, s, "level must be debug, info, warn or error")
		return "info"
	}
}

func (r *reader) theme(path string) map[string]string {
	raw := r.stringMap(path)
	out := make(map[string]string, len(raw))
	for name, hex := range raw {
		if _, err := colorful.Hex(hex); err != nil {
			r.invalid(path+"."+name, hex, "not a #rrggbb colour")
			continue
		}
		out[name] = hex
	}
	return out
}
