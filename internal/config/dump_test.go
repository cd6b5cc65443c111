package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestJSONUserSettings(t *testing.T) {
	c, dir := newTestConfig(t)
	writeFile(t, filepath.Join(dir, "settings.yaml"), "glyph: {width: 10}\n")
	writeFile(t, filepath.Join(dir, "settings.json"), `{"glyph": {"width": 14}, "editor": {"historyLimit": 5}}`)
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	s, err := c.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Glyph.Width != 14 || s.Editor.HistoryLimit != 5 {
		t.Errorf("settings = %+v", s)
	}
	if got := c.Which("glyph.width"); got != LayerUserJSON {
		t.Errorf("Which(glyph.width) = %q, want %q", got, LayerUserJSON)
	}
}

func TestDump(t *testing.T) {
	c, dir := newTestConfig(t)
	writeFile(t, filepath.Join(dir, "settings.toml"), "[keymap]\n\"1\" = \"history.undo\"\n\"Ctrl+z\" = \"none\"\n")
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	t.Run("all", func(t *testing.T) {
		out, err := c.Dump("")
		if err != nil {
			t.Fatalf("Dump: %v", err)
		}
		if !gjson.ValidBytes(out) {
			t.Fatalf("invalid JSON: %s", out)
		}
		if z := gjson.GetBytes(out, "view.zoom").Float(); z != 1 {
			t.Errorf("view.zoom = %v, want 1", z)
		}
		if got := gjson.GetBytes(out, "theme.pixelOn").String(); got != "#f5e0dc" {
			t.Errorf("theme.pixelOn = %q", got)
		}
		keymap := gjson.GetBytes(out, "keymap").Map()
		if keymap["1"].String() != "history.undo" || keymap["Ctrl+z"].String() != "none" {
			t.Errorf("keymap = %v", keymap)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		out, err := c.Dump("view.*")
		if err != nil {
			t.Fatalf("Dump: %v", err)
		}
		if !gjson.GetBytes(out, "view.maxZoom").Exists() {
			t.Error("view.maxZoom missing")
		}
		if gjson.GetBytes(out, "glyph").Exists() || gjson.GetBytes(out, "keymap").Exists() {
			t.Errorf("filter leaked other sections: %s", out)
		}
	})

	t.Run("whole section", func(t *testing.T) {
		out, err := c.Dump("keymap")
		if err != nil {
			t.Fatalf("Dump: %v", err)
		}
		if n := len(gjson.GetBytes(out, "keymap").Map()); n != 2 {
			t.Errorf("keymap entries = %d, want 2", n)
		}
	})
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"keymap", "keymap"},
		{"a.b", `a\.b`},
		{"x*?", `x\*\?`},
	}
	for _, tt := range tests {
		if got := escapePath(tt.in); got != tt.want {
			t.Errorf("escapePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
