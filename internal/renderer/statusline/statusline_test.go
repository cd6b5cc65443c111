package statusline

import (
	"strings"
	"testing"

	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
)

func newBackend(t *testing.T, w, h int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestStatusBar(t *testing.T) {
	b := newBackend(t, 80, 1)
	s := New()
	s.SetState(State{
		Mode:      "draw",
		Operation: "xor",
		Zoom:      1,
		Undo:      2,
		Selected:  3,
		Codepoint: "U+0041",
		SpaceHeld: true,
	})
	s.Render(b, 0, 80)

	row := b.Row(0)
	for _, want := range []string{" DRAW ", "xor", "pan-lock", "3 selected", "U+0041", "zoom 1.00", "undo 2"} {
		if !strings.Contains(row, want) {
			t.Errorf("status bar %q missing %q", row, want)
		}
	}
	if !strings.HasSuffix(row, "undo 2 ") {
		t.Errorf("right part should be flush right: %q", row)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	b := newBackend(t, 12, 1)
	s := New()
	s.SetState(State{Mode: "drag", Operation: "select", Codepoint: "U+0041"})
	s.Render(b, 0, 12)

	row := b.Row(0)
	if !strings.HasPrefix(row, " DRAG ") {
		t.Errorf("row = %q", row)
	}
	if strings.Contains(row, "undo") {
		t.Errorf("right part should be dropped when it does not fit: %q", row)
	}
}

func TestPromptAndMessage(t *testing.T) {
	b := newBackend(t, 30, 1)
	s := New()

	s.SetPrompt(true, "Jump: ")
	s.SetPromptBuffer("U+00E9")
	s.Render(b, 0, 30)
	if row := b.Row(0); !strings.HasPrefix(row, "Jump: U+00E9") {
		t.Errorf("prompt row = %q", row)
	}
	if !s.PromptActive() {
		t.Error("prompt should be active")
	}

	s.SetPrompt(false, "")
	s.SetMessage("codepoint out of range: this message is long", MessageError)
	s.Render(b, 0, 30)
	row := b.Row(0)
	if !strings.HasPrefix(row, "codepoint out of range") || !strings.Contains(row, "…") {
		t.Errorf("message row = %q", row)
	}

	s.ClearMessage()
	if msg, typ := s.Message(); msg != "" || typ != MessageNone {
		t.Error("ClearMessage did not clear")
	}
}
