package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a BlobStore and counts backend calls.
type countingStore struct {
	BlobStore
	resolves atomic.Int64
}

func (c *countingStore) Resolve(ctx context.Context, assetID string) (string, error) {
	c.resolves.Add(1)
	return c.BlobStore.Resolve(ctx, assetID)
}

func TestCachingStore_ResolveCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{BlobStore: NewMemoryStore()}
	store := NewCachingStore(inner, time.Minute)

	id, err := store.Put(ctx, []byte("pic"), "image/png")
	require.NoError(t, err)

	url1, err := store.Resolve(ctx, id)
	require.NoError(t, err)
	url2, err := store.Resolve(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, url1, url2)
	assert.Equal(t, int64(1), inner.resolves.Load())
}

func TestCachingStore_ConcurrentResolveDeduplicated(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{BlobStore: NewMemoryStore()}
	store := NewCachingStore(inner, time.Minute)

	id, err := store.Put(ctx, []byte("pic"), "image/png")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Resolve(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Singleflight plus the cache keeps backend calls well below the
	// number of callers; with no expiry inside the window it is one.
	assert.LessOrEqual(t, inner.resolves.Load(), int64(2))
}

func TestCachingStore_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{BlobStore: NewMemoryStore()}
	store := NewCachingStore(inner, time.Minute)

	_, err := store.Resolve(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Resolve(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, int64(2), inner.resolves.Load())
}
