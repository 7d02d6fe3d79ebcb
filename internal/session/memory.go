package session

import (
	"context"
	"sync"
)

// MemoryStore keeps encoded states in process memory. States are stored in
// their serialized form so callers never share mutable candidate slices.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an in-memory Store for tests and development.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64][]byte)}
}

// Get returns the state of id, or Idle if none was stored.
func (m *MemoryStore) Get(_ context.Context, id int64) (State, error) {
	m.mu.RLock()
	data, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Idle{}, nil
	}
	return Decode(data)
}

// Set replaces the state of id.
func (m *MemoryStore) Set(_ context.Context, id int64, st State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[id] = data
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored conversations.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
