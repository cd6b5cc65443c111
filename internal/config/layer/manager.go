package layer

import (
	"sort"
	"sync"
)

// Manager holds the layers of a configuration and merges them on demand.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer // ascending priority
	merged map[string]any
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Put adds a layer, replacing any layer with the same name.
func (m *Manager) Put(l *Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(l.Name)
	m.layers = append(m.layers, l)
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
	m.merged = nil
}

// Remove deletes a layer by name. It reports whether the layer existed.
func (m *Manager) Remove(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.removeLocked(name) {
		return false
	}
	m.merged = nil
	return true
}

func (m *Manager) removeLocked(name string) bool {
	for i, l := range m.layers {
		if l.Name == name {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Layer returns the layer with the given name, or nil.
func (m *Manager) Layer(name string) *Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Layers returns the layers in ascending priority.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Layer(nil), m.layers...)
}

// Len returns the number of layers.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.layers)
}

// Merge returns a copy of all layers merged by priority.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.merged == nil {
		merged := make(map[string]any)
		for _, l := range m.layers {
			DeepMerge(merged, l.Data)
		}
		m.merged = merged
	}
	return Clone(m.merged)
}

// Get returns the value at path from the highest priority layer that
// defines it, together with that layer.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		if v, ok := GetByPath(m.layers[i].Data, path); ok {
			return v, m.layers[i], true
		}
	}
	return nil, nil, false
}

// Which returns the name of the layer that provides path, or "".
func (m *Manager) Which(path string) string {
	_, l, ok := m.Get(path)
	if !ok {
		return ""
	}
	return l.Name
}
