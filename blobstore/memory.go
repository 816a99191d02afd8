package blobstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory BlobStore implementation for testing.
// It stores assets in memory without any backend dependency.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

// NewMemoryStore creates a new in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		assets: make(map[string][]byte),
	}
}

// Put stores content under a fresh generated id.
func (m *MemoryStore) Put(_ context.Context, content []byte, contentType string) (string, error) {
	id := uuid.NewString() + ExtensionFor(contentType)

	// Copy to prevent external mutation
	copied := make([]byte, len(content))
	copy(copied, content)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.assets[id] = copied
	return id, nil
}

// Resolve returns a synthetic URL for the asset.
func (m *MemoryStore) Resolve(_ context.Context, assetID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.assets[assetID]; !ok {
		return "", ErrNotFound
	}
	return "memory://" + assetID, nil
}

// Content returns a copy of the stored asset bytes.
func (m *MemoryStore) Content(assetID string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.assets[assetID]
	if !ok {
		return nil, false
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, true
}

// Len returns the number of stored assets.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.assets)
}
