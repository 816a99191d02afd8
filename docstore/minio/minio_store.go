package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/hupe1980/profilestore/docstore"
	"github.com/minio/minio-go/v7"
)

// Store implements docstore.DocumentStore for MinIO and S3-compatible
// storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO document store.
// rootPrefix is prepended to all document names (e.g. "charity/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// CreateOnce stores content at name, refusing to overwrite an existing
// document.
func (s *Store) CreateOnce(ctx context.Context, name string, content []byte) (string, error) {
	key := s.key(name)

	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return "", docstore.ErrAlreadyExists
	}
	errResp := minio.ToErrorResponse(err)
	if errResp.Code != "NoSuchKey" && errResp.Code != "NotFound" {
		return "", fmt.Errorf("failed to stat MinIO object: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to put MinIO object: %w", err)
	}

	return path.Join(s.bucket, key), nil
}
