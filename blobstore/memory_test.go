package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutResolve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("fake png bytes")
	id, err := store.Put(ctx, data, "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Contains(t, id, ".png")

	url, err := store.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "memory://"+id, url)

	content, ok := store.Content(id)
	require.True(t, ok)
	assert.Equal(t, data, content)
}

func TestMemoryStore_PutNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id1, err := store.Put(ctx, []byte("first"), "image/png")
	require.NoError(t, err)
	id2, err := store.Put(ctx, []byte("second"), "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, store.Len())

	// The first asset is untouched by the second put.
	content, ok := store.Content(id1)
	require.True(t, ok)
	assert.Equal(t, []byte("first"), content)
}

func TestMemoryStore_ResolveNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Resolve(ctx, "nonexistent.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", ExtensionFor("image/jpeg"))
	assert.Equal(t, ".png", ExtensionFor("image/png"))
	assert.Equal(t, ".gif", ExtensionFor("image/gif"))
	assert.Equal(t, "", ExtensionFor("application/x-unknown-type"))
}
