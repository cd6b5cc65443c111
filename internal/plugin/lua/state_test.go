package lua

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"
)

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		t.Run(name, func(t *testing.T) {
			if v := s.GetGlobal(name); v != lua.LNil {
				t.Errorf("%s = %v, want nil", name, v)
			}
		})
	}
	if s.GetGlobal("io") != lua.LNil || s.GetGlobal("os") != lua.LNil {
		t.Error("io and os libraries should not be opened")
	}
}

func TestSafeLibrariesOpen(t *testing.T) {
	s := NewState()
	defer s.Close()

	code := `r = string.upper("a") .. tostring(math.floor(2.5)) .. table.concat({"x", "y"})`
	if err := s.DoString(context.Background(), "libs", code); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := s.GetGlobal("r").String(); got != "A2xy" {
		t.Errorf("r = %q, want %q", got, "A2xy")
	}
}

func TestPrintRedirect(t *testing.T) {
	var buf bytes.Buffer
	s := NewState(WithOutput(&buf))
	defer s.Close()

	if err := s.DoString(context.Background(), "print", `print("a", 1, true)`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := buf.String(); got != "a\t1\ttrue\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), "loop", `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("err = %v, want ErrExecutionTimeout", err)
	}
}

func TestSyntaxError(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(context.Background(), "bad", `if then`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := s.DoString(context.Background(), "x", `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("err = %v, want ErrStateClosed", err)
	}
	if v := s.GetGlobal("x"); v != lua.LNil {
		t.Errorf("GetGlobal after close = %v", v)
	}
}
