package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/matteosandrin/online-pixel-font-creator/internal/config/layer"
	"github.com/matteosandrin/online-pixel-font-creator/internal/config/loader"
	"github.com/matteosandrin/online-pixel-font-creator/internal/config/watcher"
)

// Layer names.
const (
	LayerDefaults = "defaults"
	LayerUserTOML = "user-toml"
	LayerUserYAML = "user-yaml"
	LayerUserJSON = "user-json"
	LayerFile     = "file"
	LayerEnv      = "environment"
	LayerArgs     = "arguments"
	LayerSession  = "session"
)

// AppName names the user config directory.
const AppName = "glyphed"

// source describes how one watched path is turned back into a layer.
type source struct {
	layer    string
	kind     layer.Source
	priority int
	env      bool
}

// Config provides access to the merged configuration.
type Config struct {
	mu sync.RWMutex

	layers *layer.Manager
	fsys   loader.FileSystem

	userConfigDir string
	file          string
	envPrefix     string
	dotenv        []string

	enableWatcher bool
	watcher       *watcher.Watcher
	sources       map[string]source

	loaded bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the user configuration directory.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithFile adds an explicit settings file above the user settings.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithDotEnv sets the .env files read underneath the process environment.
func WithDotEnv(paths ...string) Option {
	return func(c *Config) {
		c.dotenv = paths
	}
}

// WithWatcher enables watching the settings files for changes.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// WithFileSystem replaces the file system used to read settings files.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fsys = fsys
	}
}

// New creates a Config. Call Load to read the sources.
func New(opts ...Option) *Config {
	c := &Config{
		layers:    layer.NewManager(),
		fsys:      loader.OSFS{},
		envPrefix: loader.DefaultEnvPrefix,
		dotenv:    []string{".env", ".env.local"},
		sources:   make(map[string]source),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}
	c.layers.Put(layer.New(LayerDefaults, layer.SourceBuiltin, layer.PriorityBuiltin, defaultConfig()))
	return c
}

// Load reads every configuration source. It may be called again to
// reload everything; argument and session layers are kept.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sources = make(map[string]source)

	if c.userConfigDir != "" {
		if err := c.loadFile(filepath.Join(c.userConfigDir, "settings.toml"), source{
			layer: LayerUserTOML, kind: layer.SourceUser, priority: layer.PriorityUserTOML,
		}, false); err != nil {
			return err
		}
		if err := c.loadFile(filepath.Join(c.userConfigDir, "settings.yaml"), source{
			layer: LayerUserYAML, kind: layer.SourceUser, priority: layer.PriorityUserYAML,
		}, false); err != nil {
			return err
		}
		if err := c.loadFile(filepath.Join(c.userConfigDir, "settings.json"), source{
			layer: LayerUserJSON, kind: layer.SourceUser, priority: layer.PriorityUserJSON,
		}, false); err != nil {
			return err
		}
	}

	if c.file != "" {
		if err := c.loadFile(c.file, source{
			layer: LayerFile, kind: layer.SourceFile, priority: layer.PriorityFile,
		}, true); err != nil {
			return err
		}
	}

	if err := c.loadEnv(); err != nil {
		return err
	}
	for _, p := range c.dotenv {
		c.sources[absPath(p)] = source{layer: LayerEnv, env: true}
	}

	c.loaded = true

	if c.enableWatcher {
		return c.startWatcher()
	}
	return nil
}

// loadFile reads one settings file into its layer. A missing optional file
// removes the layer.
func (c *Config) loadFile(path string, src source, required bool) error {
	c.sources[absPath(path)] = src

	l, err := loader.ForFile(c.fsys, path)
	if err != nil {
		return err
	}
	data, err := l.Load()
	if err != nil {
		return err
	}
	if data == nil {
		if required {
			return fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
		}
		c.layers.Remove(src.layer)
		return nil
	}
	c.layers.Put(layer.FromFile(src.layer, src.kind, src.priority, path, data))
	return nil
}

func (c *Config) loadEnv() error {
	data, err := loader.NewEnvLoader(c.envPrefix).WithDotEnv(c.dotenv...).Load()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		c.layers.Remove(LayerEnv)
		return nil
	}
	c.layers.Put(layer.New(LayerEnv, layer.SourceEnv, layer.PriorityEnv, data))
	return nil
}

func (c *Config) startWatcher() error {
	if c.watcher == nil {
		w, err := watcher.New()
		if err != nil {
			return fmt.Errorf("starting config watcher: %w", err)
		}
		c.watcher = w
	}
	for path := range c.sources {
		if err := c.watcher.Watch(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
	return nil
}

// Reload re-reads the source named by a watcher event. It reports whether
// the event belonged to a known source.
func (c *Config) Reload(ev watcher.Event) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, ok := c.sources[filepath.Clean(ev.Path)]
	if !ok {
		return false, nil
	}
	if src.env {
		return true, c.loadEnv()
	}
	if ev.Op == watcher.OpRemove {
		c.layers.Remove(src.layer)
		return true, nil
	}
	return true, c.loadFile(ev.Path, src, false)
}

// Changes returns watcher events for the settings files. It is nil when
// watching is disabled.
func (c *Config) Changes() <-chan watcher.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Events()
}

// WatchErrors returns errors from the file watcher, or nil.
func (c *Config) WatchErrors() <-chan error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Errors()
}

// Close stops the file watcher.
func (c *Config) Close() error {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		return w.Close()
	}
	return nil
}

// Loaded reports whether Load has completed.
func (c *Config) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// UserConfigDir returns the user configuration directory.
func (c *Config) UserConfigDir() string {
	return c.userConfigDir
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	return layer.GetByPath(c.Merged(), path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	return toInt(path, v)
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetFloat returns a float64 value at the given path.
func (c *Config) GetFloat(path string) (float64, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	return toFloat(path, v)
}

// GetStringSlice returns a string slice at the given path.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	return toStrings(path, v)
}

// GetStringMap returns a table of strings at the given path.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	return toStringMap(path, v)
}

// Set stores a value in the session layer, above every other source.
func (c *Config) Set(path string, value any) error {
	return c.setIn(LayerSession, layer.SourceSession, layer.PrioritySession, path, value)
}

// SetArg stores a value from a command-line flag.
func (c *Config) SetArg(path string, value any) error {
	return c.setIn(LayerArgs, layer.SourceArgs, layer.PriorityArgs, path, value)
}

func (c *Config) setIn(name string, src layer.Source, priority int, path string, value any) error {
	if path == "" {
		return ErrInvalidPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.layers.Layer(name)
	if l == nil {
		l = layer.New(name, src, priority, nil)
	} else {
		l = l.Clone()
	}
	if !layer.SetByPath(l.Data, path, value) {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	c.layers.Put(l)
	return nil
}

// Merged returns a copy of the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layers.Merge()
}

// Which returns the name of the layer providing path.
func (c *Config) Which(path string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layers.Which(path)
}

// Layers returns the names of the loaded layers, lowest priority first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := c.layers.Layers()
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}
	return names
}

// WatchedFiles returns the settings files that are tracked for reload.
func (c *Config) WatchedFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.sources))
	for p := range c.sources {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func toInt(path string, v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, &TypeError{Path: path, Expected: "int", Actual: "float64"}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

func toFloat(path string, v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "float64", Actual: typeName(v)}
	}
}

func toStrings(path string, v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: "[]" + typeName(item)}
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

func toStringMap(path string, v any) (map[string]string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "table", Actual: typeName(v)}
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		s, ok := item.(string)
		if !ok {
			return nil, &TypeError{Path: path + "." + k, Expected: "string", Actual: typeName(item)}
		}
		out[k] = s
	}
	return out, nil
}
