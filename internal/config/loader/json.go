package loader

import (
	"errors"
	"math"

	"github.com/tidwall/gjson"
)

// errInvalidJSON is wrapped by ParseError for malformed JSON.
var errInvalidJSON = errors.New("invalid JSON")

// JSONLoader reads a JSON settings file.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a loader for path. A nil fsys uses the OS.
func NewJSONLoader(fsys FileSystem, path string) *JSONLoader {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &JSONLoader{fs: fsys, path: path}
}

// Load implements Loader.
func (l *JSONLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseJSON(l.path, data)
}

// ParseJSON decodes a JSON object. Integral numbers decode as int so the
// result merges like the TOML and YAML loaders' output.
func ParseJSON(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Err: errInvalidJSON}
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, &ParseError{Path: source, Err: errors.New("top level must be an object")}
	}
	out, _ := normalizeJSON(res.Value()).(map[string]any)
	if out == nil {
		out = make(map[string]any)
	}
	return out, nil
}

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeJSON(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeJSON(item)
		}
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int(t)
		}
		return t
	default:
		return v
	}
}
