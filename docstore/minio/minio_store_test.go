package minio

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hupe1980/profilestore/docstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-profilestore"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	prefix := fmt.Sprintf("test-%d/", time.Now().UnixNano())
	store := NewStore(client, bucket, prefix)

	name := "registration.pdf"
	data := []byte("original document")

	ref, err := store.CreateOnce(ctx, name, data)
	require.NoError(t, err)
	assert.Contains(t, ref, name)

	// Write-once: the same name must not be overwritten.
	_, err = store.CreateOnce(ctx, name, []byte("overwrite attempt"))
	assert.ErrorIs(t, err, docstore.ErrAlreadyExists)

	obj, err := client.GetObject(ctx, bucket, prefix+name, minio.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	buf := make([]byte, len(data))
	n, _ := obj.Read(buf)
	assert.Equal(t, data, buf[:n])

	// Clean up
	require.NoError(t, client.RemoveObject(ctx, bucket, prefix+name, minio.RemoveObjectOptions{}))
}
