package suggestion

import (
	"context"
	"sync"
)

// MemoryStore keeps suggestions in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Suggestion
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends s.
func (m *MemoryStore) Save(_ context.Context, s Suggestion) error {
	m.mu.Lock()
	m.items = append(m.items, s)
	m.mu.Unlock()
	return nil
}

// Recent returns up to limit suggestions, newest first.
func (m *MemoryStore) Recent(_ context.Context, limit int) ([]Suggestion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 || limit > len(m.items) {
		limit = len(m.items)
	}
	out := make([]Suggestion, 0, limit)
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}
