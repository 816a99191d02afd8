package entitystore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory EntityStore implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates a new in-memory entity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Get returns the record for the given email, or ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, email string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[email]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.Clone(), nil
}

// Upsert writes the record unconditionally.
func (m *MemoryStore) Upsert(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.Email] = rec.Clone()
	return nil
}

// CreateIfAbsent writes the record only if its email is unused.
func (m *MemoryStore) CreateIfAbsent(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.Email]; exists {
		return ErrAlreadyExists
	}
	m.records[rec.Email] = rec.Clone()
	return nil
}

// Len returns the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}
