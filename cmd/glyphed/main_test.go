package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{
		"-config", "extra.toml",
		"-codepoint", "U+00E9",
		"-script", "a.lua",
		"-script", "b.lua",
		"-log-level", "debug",
		"-watch=false",
	}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if opts.ConfigPath != "extra.toml" || opts.Codepoint != "U+00E9" || opts.LogLevel != "debug" {
		t.Errorf("opts = %+v", opts)
	}
	if len(opts.Scripts) != 2 || opts.Scripts[1] != "b.lua" {
		t.Errorf("scripts = %v", opts.Scripts)
	}
	if opts.Watch {
		t.Error("watch should be disabled")
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad level", []string{"-log-level", "loud"}},
		{"positional", []string{"font.bin"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if _, err := parseFlags(tt.args, &stderr); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "glyphed dev") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-level", "loud"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "invalid log level") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunPrintConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-print-config", "glyph.*", "-codepoint", "B"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, `"width": 8`) || strings.Contains(out, "theme") {
		t.Errorf("stdout = %q", out)
	}
}
