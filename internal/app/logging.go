package app

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a level name. Unknown names yield LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger writes leveled lines with optional key=value fields.
// Derived loggers share the parent's output and lock.
type Logger struct {
	mu     *sync.Mutex
	level  LogLevel
	output io.Writer
	prefix string
	fields map[string]any
	clock  func() time.Time
}

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	// Level is the minimum level written.
	Level LogLevel
	// Output receives log lines. Nil discards them.
	Output io.Writer
	// Prefix is written before every message.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration. The
// terminal belongs to the editor, so output is discarded unless a log
// file is configured.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: io.Discard,
		Prefix: "glyphed",
	}
}

// NewLogger creates a logger.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	return &Logger{
		mu:     &sync.Mutex{},
		level:  cfg.Level,
		output: cfg.Output,
		prefix: cfg.Prefix,
		clock:  time.Now,
	}
}

// NullLogger discards everything.
var NullLogger = NewLogger(LoggerConfig{Level: LogLevelError + 1})

// WithField returns a logger that appends key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		mu:     l.mu,
		level:  l.level,
		output: l.output,
		prefix: l.prefix,
		fields: fields,
		clock:  l.clock,
	}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) { l.log(LogLevelInfo, msg, args...) }

// Warn logs a warning.
func (l *Logger) Warn(msg string, args ...any) { l.log(LogLevelWarn, msg, args...) }

// Error logs an error.
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(l.clock().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteString("}")
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.output, b.String())
}

// Writer returns an io.Writer that logs each written line at level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &lineWriter{l: l, level: level}
}

type lineWriter struct {
	l     *Logger
	level LogLevel
	buf   bytes.Buffer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			return len(p), nil
		}
		w.l.log(w.level, "%s", strings.TrimSuffix(line, "\n"))
	}
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// logComponentError logs err tagged with component.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("%v", err)
	}
}
