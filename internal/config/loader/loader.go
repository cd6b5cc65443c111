// Package loader reads configuration sources into nested maps.
//
// Settings files may be TOML (github.com/pelletier/go-toml/v2), YAML
// (gopkg.in/yaml.v3) or JSON (github.com/tidwall/gjson); the environment is read through EnvLoader, which can
// also pull variables from .env files with github.com/joho/godotenv.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for a settings file with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader reads one configuration source. A missing source yields a nil
// map and no error.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem abstracts file access so loaders can be tested in memory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS is the operating system file system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Stat implements FileSystem.
func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// ParseError reports a malformed settings file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Format is a settings file format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// ForFile returns a loader for path chosen by its extension.
func ForFile(fsys FileSystem, path string) (Loader, error) {
	if fsys == nil {
		fsys = OSFS{}
	}
	switch FormatOf(path) {
	case FormatTOML:
		return NewTOMLLoader(fsys, path), nil
	case FormatYAML:
		return NewYAMLLoader(fsys, path), nil
	case FormatJSON:
		return NewJSONLoader(fsys, path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// readFile reads path, mapping a missing file to nil data.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}
