package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ref, err := store.CreateOnce(ctx, "registration.pdf", []byte("original"))
	require.NoError(t, err)
	assert.Equal(t, "memory://registration.pdf", ref)

	// Second create with the same name fails and leaves the first
	// document untouched.
	_, err = store.CreateOnce(ctx, "registration.pdf", []byte("overwrite attempt"))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	content, ok := store.Content("registration.pdf")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), content)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_DistinctNames(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.CreateOnce(ctx, "a.pdf", []byte("a"))
	require.NoError(t, err)
	_, err = store.CreateOnce(ctx, "b.pdf", []byte("b"))
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
}
