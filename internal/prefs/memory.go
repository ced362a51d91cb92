// internal/prefs/memory.go
//
// In-memory preference store, used by tests and by --no-db.
// Values live for the life of the process.

package prefs

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Store implementation.
// State is lost when the process restarts.
type memory struct {
	mu     sync.RWMutex      // guards values
	values map[string]string // keyed by preference key
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{values: make(map[string]string)}
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
