package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/matteosandrin/online-pixel-font-creator/internal/input/key"
)

// ErrUnknownAction is returned when a binding names an action that does
// not exist.
var ErrUnknownAction = errors.New("unknown action")

// BindError reports a binding that could not be installed.
type BindError struct {
	Keys   string
	Action string
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("keymap: binding %q -> %q: %v", e.Keys, e.Action, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Binding is a single key-to-action mapping.
type Binding struct {
	// Keys is the canonical key specification.
	Keys string

	// Action is the command to run.
	Action Action

	// Source is where the binding came from ("default" or "config").
	Source string
}

// Keymap is a table of key bindings.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[key.Event]Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]Binding)}
}

// Bind binds the key specification to action, replacing any existing
// binding for the same key. Binding to ActionNone removes the key.
func (k *Keymap) Bind(spec string, action Action) error {
	return k.bind(spec, action, "config")
}

func (k *Keymap) bind(spec string, action Action, source string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return &BindError{Keys: spec, Action: string(action), Err: err}
	}
	if action != ActionNone && !action.Valid() {
		return &BindError{Keys: spec, Action: string(action), Err: ErrUnknownAction}
	}

	ev = ev.Normalize()

	k.mu.Lock()
	defer k.mu.Unlock()

	if action == ActionNone {
		delete(k.bindings, ev)
		return nil
	}
	k.bindings[ev] = Binding{Keys: ev.String(), Action: action, Source: source}
	return nil
}

// Unbind removes the binding for spec. It reports whether one existed.
func (k *Keymap) Unbind(spec string) bool {
	ev, err := key.Parse(spec)
	if err != nil {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	ev = ev.Normalize()
	if _, ok := k.bindings[ev]; !ok {
		return false
	}
	delete(k.bindings, ev)
	return true
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	b, ok := k.bindings[ev.Normalize()]
	return b.Action, ok
}

// KeysFor returns the key specifications bound to action, sorted.
func (k *Keymap) KeysFor(action Action) []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var out []string
	for _, b := range k.bindings {
		if b.Action == action {
			out = append(out, b.Keys)
		}
	}
	sort.Strings(out)
	return out
}

// Bindings returns all bindings sorted by action, then keys.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}

// Apply installs overrides, a map of key specification to action name.
// Overrides are applied in key order. On error the keymap is left
// unchanged.
func (k *Keymap) Apply(overrides map[string]string) error {
	next := k.Clone()

	keys := make([]string, 0, len(overrides))
	for spec := range overrides {
		keys = append(keys, spec)
	}
	sort.Strings(keys)

	var errs []error
	for _, spec := range keys {
		if err := next.Bind(spec, Action(overrides[spec])); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	next.mu.RLock()
	bindings := next.bindings
	next.mu.RUnlock()

	k.mu.Lock()
	k.bindings = bindings
	k.mu.Unlock()
	return nil
}

// Clone returns a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	k.mu.RLock()
	defer k.mu.RUnlock()

	c := &Keymap{bindings: make(map[key.Event]Binding, len(k.bindings))}
	for ev, b := range k.bindings {
		c.bindings[ev] = b
	}
	return c
}
