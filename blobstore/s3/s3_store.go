package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/hupe1980/profilestore/blobstore"
)

// Options configures the S3 blob store.
type Options struct {
	// Prefix is prepended to all object keys (e.g. "pictures/").
	Prefix string

	// URLExpiry is the validity window of resolved presigned URLs.
	URLExpiry time.Duration
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithURLExpiry sets the presigned URL validity window.
func WithURLExpiry(d time.Duration) func(*Options) {
	return func(o *Options) {
		o.URLExpiry = d
	}
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	uploader *manager.Uploader
	presign  *s3.PresignClient
	bucket   string
	opts     Options
}

// NewStore creates a new S3 blob store.
func NewStore(client *s3.Client, bucket string, optFns ...func(*Options)) *Store {
	opts := Options{
		URLExpiry: 15 * time.Minute,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Store{
		uploader: manager.NewUploader(client),
		presign:  s3.NewPresignClient(client),
		bucket:   bucket,
		opts:     opts,
	}
}

func (s *Store) key(assetID string) string {
	return path.Join(s.opts.Prefix, assetID)
}

// Put uploads content under a freshly generated object name and returns
// it as the asset id. Existing objects are never touched.
func (s *Store) Put(ctx context.Context, content []byte, contentType string) (string, error) {
	assetID := uuid.NewString() + blobstore.ExtensionFor(contentType)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(assetID)),
		Body:   bytes.NewReader(content),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return assetID, nil
}

// Resolve returns a presigned GET URL for the asset.
func (s *Store) Resolve(ctx context.Context, assetID string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(assetID)),
	}, s3.WithPresignExpires(s.opts.URLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign S3 URL: %w", err)
	}
	return req.URL, nil
}
