package blobstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	store := NewLimitedStore(mem, LimitConfig{MaxConcurrentUploads: 2})

	id, err := store.Put(ctx, []byte("pic"), "image/png")
	require.NoError(t, err)

	url, err := store.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "memory://"+id, url)
}

func TestLimitedStore_ConcurrencyCap(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	store := NewLimitedStore(mem, LimitConfig{MaxConcurrentUploads: 4})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Put(ctx, []byte("pic"), "image/png")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, mem.Len())
}

func TestLimitedStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewLimitedStore(NewMemoryStore(), LimitConfig{})
	_, err := store.Put(ctx, []byte("pic"), "image/png")
	assert.Error(t, err)
}

func TestLimitedStore_ThroughputChunking(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	store := NewLimitedStore(mem, LimitConfig{
		MaxConcurrentUploads: 1,
		UploadBytesPerSec:    1 << 20,
	})

	id, err := store.Put(ctx, make([]byte, 64), "image/png")
	require.NoError(t, err)

	content, ok := mem.Content(id)
	require.True(t, ok)
	assert.Len(t, content, 64)
}
