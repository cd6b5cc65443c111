// Package main is the entry point for the glyphed bitmap font editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/matteosandrin/online-pixel-font-creator/internal/app"
	"github.com/matteosandrin/online-pixel-font-creator/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// scriptList collects repeated -script flags.
type scriptList []string

func (s *scriptList) String() string { return strings.Join(*s, ",") }

func (s *scriptList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type cliOptions struct {
	app.Options
	showVersion bool
	printConfig string
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	var scripts scriptList

	fs := flag.NewFlagSet("glyphed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to an extra settings file (TOML or YAML)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to an extra settings file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.Codepoint, "codepoint", "", "Codepoint to open, e.g. U+00E9 or é")
	fs.Var(&scripts, "script", "Lua script to run at startup (repeatable)")
	fs.BoolVar(&opts.Watch, "watch", true, "Reload settings files when they change")
	fs.StringVar(&opts.printConfig, "print-config", "", "Print merged settings matching a pattern such as \"view.*\" or \"*\" and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "glyphed - bitmap glyph editor\n\n")
		fmt.Fprintf(stderr, "Usage: glyphed [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  glyphed                         Edit from U+0041\n")
		fmt.Fprintf(stderr, "  glyphed -codepoint U+00E9       Start at é\n")
		fmt.Fprintf(stderr, "  glyphed -script box.lua         Run a script first\n")
		fmt.Fprintf(stderr, "  glyphed -print-config '*'       Show effective settings\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	opts.Scripts = scripts
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "glyphed %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if opts.printConfig != "" {
		return printConfig(opts, stdout, stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// printConfig loads settings without starting the editor and prints them.
func printConfig(opts cliOptions, stdout, stderr io.Writer) int {
	opts.Watch = false
	application, err := app.New(context.Background(), opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	out, err := application.Config().Dump(opts.printConfig)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	stdout.Write(out)
	return 0
}
