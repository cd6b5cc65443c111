// Package layer merges configuration from several sources by priority.
//
// Each source (built-in defaults, user settings files, the -config file,
// the environment, command-line flags) contributes a Layer of nested
// values. Higher priority layers override lower ones key by key; nested
// tables are merged recursively.
package layer

import "time"

// Source identifies where a layer came from.
type Source uint8

const (
	SourceBuiltin Source = iota
	SourceUser
	SourceFile
	SourceEnv
	SourceArgs
	SourceSession
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceUser:
		return "user"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceArgs:
		return "arguments"
	case SourceSession:
		return "session"
	default:
		return "unknown"
	}
}

// Standard priorities. Higher values win.
const (
	PriorityBuiltin  = 0
	PriorityUserTOML = 100
	PriorityUserYAML = 150
	PriorityUserJSON = 175
	PriorityFile     = 200
	PriorityEnv      = 500
	PriorityArgs     = 600
	PrioritySession  = 1000
)

// DefaultPriority returns the standard priority for a source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceUser:
		return PriorityUserTOML
	case SourceFile:
		return PriorityFile
	case SourceEnv:
		return PriorityEnv
	case SourceArgs:
		return PriorityArgs
	case SourceSession:
		return PrioritySession
	default:
		return PriorityBuiltin
	}
}

// Layer is one configuration source.
type Layer struct {
	Name     string
	Source   Source
	Priority int

	// Path is the file the layer was read from, if any.
	Path string

	// Data holds nested values: tables are map[string]any.
	Data map[string]any

	LoadedAt time.Time
}

// New creates a layer holding data. A nil data map is replaced by an
// empty one.
func New(name string, source Source, priority int, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: priority,
		Data:     data,
		LoadedAt: time.Now(),
	}
}

// FromFile creates a layer read from path.
func FromFile(name string, source Source, priority int, path string, data map[string]any) *Layer {
	l := New(name, source, priority, data)
	l.Path = path
	return l
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Data = Clone(l.Data)
	return &c
}
