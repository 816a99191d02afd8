package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// LimitConfig holds upload admission limits.
type LimitConfig struct {
	// MaxConcurrentUploads is the maximum number of in-flight Puts.
	// If 0, defaults to 1.
	MaxConcurrentUploads int64

	// UploadBytesPerSec is the maximum upload throughput.
	// If 0, unlimited.
	UploadBytesPerSec int64
}

// LimitedStore wraps a BlobStore and applies admission control to
// uploads: a concurrency cap and an optional byte-throughput limit.
// Resolve is never throttled.
type LimitedStore struct {
	inner BlobStore

	sem     *semaphore.Weighted
	limiter *rate.Limiter // nil if unlimited
}

// NewLimitedStore creates a new LimitedStore.
func NewLimitedStore(inner BlobStore, cfg LimitConfig) *LimitedStore {
	if cfg.MaxConcurrentUploads <= 0 {
		cfg.MaxConcurrentUploads = 1
	}

	s := &LimitedStore{
		inner: inner,
		sem:   semaphore.NewWeighted(cfg.MaxConcurrentUploads),
	}
	if cfg.UploadBytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.UploadBytesPerSec), int(cfg.UploadBytesPerSec))
	}
	return s
}

// Put blocks until an upload slot and throughput budget are available,
// or ctx is canceled, then delegates to the inner store.
func (s *LimitedStore) Put(ctx context.Context, content []byte, contentType string) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	if s.limiter != nil {
		// WaitN cannot exceed the burst, which equals the per-second
		// limit; spend the budget in burst-sized chunks.
		burst := s.limiter.Burst()
		for remaining := len(content); remaining > 0; {
			n := remaining
			if n > burst {
				n = burst
			}
			if err := s.limiter.WaitN(ctx, n); err != nil {
				return "", err
			}
			remaining -= n
		}
	}

	return s.inner.Put(ctx, content, contentType)
}

// Resolve passes through to the inner store.
func (s *LimitedStore) Resolve(ctx context.Context, assetID string) (string, error) {
	return s.inner.Resolve(ctx, assetID)
}
