package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by configuration operations.
var (
	// ErrSettingNotFound indicates the setting path doesn't exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidPath indicates an empty or malformed setting path.
	ErrInvalidPath = errors.New("invalid setting path")

	// ErrNotLoaded is returned by operations that need Load to have run.
	ErrNotLoaded = errors.New("configuration not loaded")
)

// TypeError reports a setting whose value has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("setting %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// ValidationError reports a setting whose value is out of range or
// otherwise unusable.
type ValidationError struct {
	Path    string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("setting %s: %s (got %v)", e.Path, e.Message, e.Value)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap returns the collected errors.
func (e ValidationErrors) Unwrap() []error {
	return e
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case []any, []string:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
