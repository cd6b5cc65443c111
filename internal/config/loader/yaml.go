package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLoader reads a YAML settings file.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a loader for path. A nil fsys uses the OS.
func NewYAMLLoader(fsys FileSystem, path string) *YAMLLoader {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &YAMLLoader{fs: fsys, path: path}
}

// Load implements Loader.
func (l *YAMLLoader) Load() (map[string]any, error) {
	data, err := readFile(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}
	return ParseYAML(l.path, data)
}

// ParseYAML decodes YAML data. Integers decode as int and tables as
// map[string]any, the same shapes the TOML loader produces for merging.
func ParseYAML(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		perr := &ParseError{Path: source, Err: err}
		if te, ok := err.(*yaml.TypeError); ok && len(te.Errors) > 0 {
			perr.Err = fmt.Errorf("%s", te.Errors[0])
		}
		return nil, perr
	}
	if out == nil {
		out = make(map[string]any)
	}
	return normalizeYAML(out).(map[string]any), nil
}

// normalizeYAML converts nested map[any]any tables, which YAML produces
// for non-string keys, into map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeYAML(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalizeYAML(item)
		}
		return t
	default:
		return v
	}
}
