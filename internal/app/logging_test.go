package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "glyphed"})
	l.clock = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return l, &buf
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	l.WithComponent("config").WithField("a", 1).Warn("bad value %d", 7)

	want := "2024-05-01T12:00:00.000 [WARN] glyphed: bad value 7 {a=1, component=config}\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	l.SetLevel(LogLevelError)
	if l.Level() != LogLevelError {
		t.Errorf("Level = %v", l.Level())
	}
}

func TestLoggerWriter(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	w := l.Writer(LogLevelInfo)

	w.Write([]byte("first\nsec"))
	w.Write([]byte("ond\n"))

	out := buf.String()
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "glyphed: first\n") || !strings.Contains(out, "glyphed: second\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("dropped")
	var app Application
	if app.Logger() != NullLogger {
		t.Error("application without logger should use NullLogger")
	}
}
