// Package config provides layered configuration for the glyph editor.
//
// Settings are merged from several sources, lowest priority first:
//
//   - built-in defaults
//   - settings.toml in the user config directory
//   - settings.yaml in the user config directory
//   - settings.json in the user config directory
//   - a file given with -config (TOML, YAML or JSON)
//   - GLYPHED_* environment variables, including .env files
//   - command-line flags
//
// Values are addressed by dotted paths such as "view.zoom". Typed sections
// are available through Settings, and EditorConfig converts them to the
// editor session settings.
//
// When watching is enabled the settings files are observed with fsnotify
// and Reload re-reads the file named by a watcher event.
//
// Dump renders the merged settings as indented JSON for -print-config.
package config
