package docstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory DocumentStore implementation for testing.
// Thread-safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates a new in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

// CreateOnce stores content at name, refusing to overwrite.
func (m *MemoryStore) CreateOnce(_ context.Context, name string, content []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[name]; exists {
		return "", ErrAlreadyExists
	}

	// Copy to prevent external mutation
	copied := make([]byte, len(content))
	copy(copied, content)
	m.docs[name] = copied

	return "memory://" + name, nil
}

// Content returns a copy of the stored document bytes.
func (m *MemoryStore) Content(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, true
}

// Len returns the number of stored documents.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.docs)
}
