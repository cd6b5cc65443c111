package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads a TOML settings file.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a loader for path. A nil fsys uses the OS.
func NewTOMLLoader(fsys FileSystem, path string) *TOMLLoader {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &TOMLLoader{fs: fsys, path: path}
}

// Load implements Loader.
func (l *TOMLLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseTOML(l.path, data)
}

// ParseTOML decodes TOML data. source names the data in errors.
func ParseTOML(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(data, &out); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			perr.Line, perr.Column = decErr.Position()
		}
		return nil, perr
	}
	if out == nil {
		out = make(map[string]any)
	}
	return out, nil
}
