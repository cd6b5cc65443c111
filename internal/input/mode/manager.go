package mode

import (
	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/edit"
)

// State is a snapshot of the mode manager.
type State struct {
	Persistent Mode
	Override   Override
	Operation  edit.Operation
}

// Effective returns the resolved mode of the snapshot.
func (s State) Effective() Mode {
	return Resolve(s.Persistent, s.Override)
}

// ChangeCallback is called after the state changes.
type ChangeCallback func(from, to State)

// Manager holds the two-layer mode state and the current operation.
// It is owned by a single editor session and is not safe for concurrent
// use.
type Manager struct {
	state     State
	callbacks []ChangeCallback
}

// NewManager creates a manager in Draw mode with the Xor operation.
func NewManager() *Manager {
	return &Manager{
		state: State{Persistent: Draw, Operation: edit.OpXor},
	}
}

// OnChange registers a callback invoked after every state change.
func (m *Manager) OnChange(cb ChangeCallback) {
	if cb != nil {
		m.callbacks = append(m.callbacks, cb)
	}
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// Current returns the effective mode.
func (m *Manager) Current() Mode {
	return m.state.Effective()
}

// Persistent returns the sticky user-selected mode.
func (m *Manager) Persistent() Mode {
	return m.state.Persistent
}

// Override returns the temporary override.
func (m *Manager) Override() Override {
	return m.state.Override
}

// Operation returns the current edit operation.
func (m *Manager) Operation() edit.Operation {
	return m.state.Operation
}

// SetPersistent changes the sticky mode.
func (m *Manager) SetPersistent(mode Mode) {
	next := m.state
	next.Persistent = mode
	m.transition(next)
}

// SetOverride activates a temporary mode.
func (m *Manager) SetOverride(mode Mode) {
	next := m.state
	next.Override = Temporary(mode)
	m.transition(next)
}

// ClearOverride drops the temporary mode.
func (m *Manager) ClearOverride() {
	next := m.state
	next.Override = Override{}
	m.transition(next)
}

// SetOperation changes the edit operation.
func (m *Manager) SetOperation(op edit.Operation) {
	next := m.state
	next.Operation = op
	m.transition(next)
}

// transition installs next and notifies callbacks if anything changed.
func (m *Manager) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	for _, cb := range m.callbacks {
		cb(prev, next)
	}
}
