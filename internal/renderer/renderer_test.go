package renderer

import (
	"strings"
	"testing"

	"github.com/matteosandrin/online-pixel-font-creator/internal/editor"
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/selection"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/core"
)

// newFixture builds a 40x20 screen with a 4x4 glyph at zoom 1, so each
// glyph pixel covers 4 columns and 2 rows. Pixel (0,0) starts at column
// 12, row 6.
func newFixture(t *testing.T, previewScale float64) (*Renderer, *backend.NullBackend, *editor.Session) {
	t.Helper()

	b := backend.NewNullBackend(40, 20)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	r := New(b, DefaultTheme())

	cfg := editor.DefaultConfig()
	cfg.GlyphWidth, cfg.GlyphHeight = 4, 4
	cfg.Zoom = 1
	cfg.PreviewScale = previewScale
	w, h := r.Layout().CanvasSize()
	cfg.CanvasWidth, cfg.CanvasHeight = w, h

	s := editor.New(cfg)
	s.OnChange(func(editor.Change) { r.MarkDirty() })
	return r, b, s
}

func bgAt(b *backend.NullBackend, col, row int) core.Color {
	return b.GetCell(col, row).Style.Background
}

func TestLayout(t *testing.T) {
	l := Layout{Width: 40, Height: 20}
	if w, h := l.CanvasSize(); w != 20 || h != 18 {
		t.Errorf("CanvasSize = %v x %v, want 20 x 18", w, h)
	}

	x, y, ok := l.ToCanvas(13, 6)
	if !ok || x != 6.75 || y != 5.5 {
		t.Errorf("ToCanvas(13, 6) = %v, %v, %v", x, y, ok)
	}
	if _, _, ok := l.ToCanvas(5, 0); ok {
		t.Error("the info row is not canvas")
	}
	if _, _, ok := l.ToCanvas(5, 19); ok {
		t.Error("the status row is not canvas")
	}
}

func TestRenderGlyph(t *testing.T) {
	r, b, s := newFixture(t, 0)
	theme := r.Theme()

	s.SetPixel(0, 0, true)
	if !r.NeedsRedraw() {
		t.Fatal("a pixel change should mark the renderer dirty")
	}
	if !r.RenderIfDirty(s) {
		t.Fatal("RenderIfDirty did not draw")
	}
	if r.RenderIfDirty(s) {
		t.Error("a clean renderer should not draw again")
	}

	tests := []struct {
		name     string
		col, row int
		want     core.Color
	}{
		{"set pixel", 12, 6, theme.PixelOn},
		{"set pixel lower half", 15, 7, theme.PixelOn},
		{"clear pixel", 16, 6, theme.PixelOff},
		{"left of grid", 11, 6, theme.Background},
		{"above grid", 12, 5, theme.Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bgAt(b, tt.col, tt.row); !got.Equals(tt.want) {
				t.Errorf("background at (%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}

	if info := b.Row(0); !strings.Contains(info, "U+0041") {
		t.Errorf("info row = %q", info)
	}
	if status := b.Row(19); !strings.Contains(status, "DRAW") || !strings.Contains(status, "xor") {
		t.Errorf("status row = %q", status)
	}
	if b.Shows() != 1 {
		t.Errorf("Show called %d times, want 1", b.Shows())
	}
}

func TestRenderSelection(t *testing.T) {
	r, b, s := newFixture(t, 0)
	theme := r.Theme()

	s.Select(selection.Cell{X: 1, Y: 0})
	r.Render(s)

	want := theme.PixelOff.Blend(theme.Selection, 0.5)
	if got := bgAt(b, 16, 6); !got.Equals(want) {
		t.Errorf("selected cell = %v, want %v", got, want)
	}
	if status := b.Row(19); !strings.Contains(status, "1 selected") {
		t.Errorf("status row = %q", status)
	}
}

func TestRenderPreviewStrip(t *testing.T) {
	r, b, s := newFixture(t, 1)
	theme := r.Theme()

	s.SetPixel(0, 0, true)
	r.Render(s)

	// Slots are 6 units wide and the centre slot is slot 2, starting at
	// column 24. The strip's top is canvas row 12, screen row 13.
	if got := bgAt(b, 26, 14); !got.Equals(theme.Preview) {
		t.Errorf("preview pixel = %v, want %v", got, theme.Preview)
	}
	if got := bgAt(b, 24, 14); !got.Equals(theme.PixelOff) {
		t.Errorf("centre slot margin = %v, want %v", got, theme.PixelOff)
	}
	if got := bgAt(b, 14, 14); !got.Equals(theme.Background) {
		t.Errorf("neighbour slot = %v, want %v", got, theme.Background)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	b := backend.NewNullBackend(10, 1)
	b.Init()
	r := New(b, DefaultTheme())
	s := editor.New(editor.DefaultConfig())

	r.Render(s)
	if row := b.Row(0); !strings.HasPrefix(row, "U+0041") {
		t.Errorf("info row = %q", row)
	}
}

func TestThemeFromHex(t *testing.T) {
	theme, err := ThemeFromHex(map[string]string{
		"pixelOn": "#ff0000",
		"bogus":   "#000000",
		"status":  "nope",
	})
	if err == nil {
		t.Fatal("expected an error for the bad entries")
	}
	if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), "status") {
		t.Errorf("error = %v", err)
	}
	if !theme.PixelOn.Equals(core.ColorFromRGB(255, 0, 0)) {
		t.Errorf("PixelOn = %v, want #FF0000", theme.PixelOn)
	}
	if !theme.Status.Equals(DefaultTheme().Status) {
		t.Error("a malformed colour should keep the default")
	}

	if _, err := ThemeFromHex(map[string]string{"statusBg": "#101010"}); err != nil {
		t.Errorf("valid theme error: %v", err)
	}
}
