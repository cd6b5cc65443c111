package loader

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvPrefix is the prefix of recognised environment variables.
const DefaultEnvPrefix = "GLYPHED_"

// EnvLoader reads settings from environment variables such as
// GLYPHED_VIEW_MIN_ZOOM, which maps to view.minZoom. Variables from .env
// files fill in names the process environment does not set.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	dotenv  []string
	environ func() []string
}

// NewEnvLoader creates an environment loader for prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":       "logging.level",
		prefix + "LOG_FILE":        "logging.file",
		prefix + "START_CODEPOINT": "editor.startCodepoint",
		prefix + "BLOCKS_FILE":     "unicode.blocksFile",
	}
}

// WithDotEnv adds .env files to read. Missing files are skipped.
func (l *EnvLoader) WithDotEnv(paths ...string) *EnvLoader {
	l.dotenv = append(l.dotenv, paths...)
	return l
}

// AddMapping maps an environment variable to a config path explicitly.
func (l *EnvLoader) AddMapping(env, path string) {
	l.mapping[env] = path
}

// Load implements Loader.
func (l *EnvLoader) Load() (map[string]any, error) {
	vars, err := l.variables()
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for name, value := range vars {
		path, ok := l.mapping[name]
		if !ok {
			if !strings.HasPrefix(name, l.prefix) {
				continue
			}
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setPath(out, path, parseValue(value))
	}
	return out, nil
}

// variables collects the environment, with .env files underneath it.
func (l *EnvLoader) variables() (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range l.dotenv {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ParseError{Path: path, Err: err}
		}
		for k, v := range values {
			if _, seen := vars[k]; !seen {
				vars[k] = v
			}
		}
	}
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok {
			vars[name] = value
		}
	}
	return vars, nil
}

// envToPath converts GLYPHED_VIEW_MIN_ZOOM to view.minZoom: the first
// segment is the section, the rest form a camelCase key.
func (l *EnvLoader) envToPath(name string) string {
	parts := strings.Split(strings.TrimPrefix(name, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	var key strings.Builder
	for i, p := range parts[1:] {
		p = strings.ToLower(p)
		if p == "" {
			continue
		}
		if i > 0 {
			p = strings.ToUpper(p[:1]) + p[1:]
		}
		key.WriteString(p)
	}
	return strings.ToLower(parts[0]) + "." + key.String()
}

// parseValue converts an environment string to bool, int, float, a JSON
// list or table, or leaves it as a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}

func setPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	cur := data
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
