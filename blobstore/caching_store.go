package blobstore

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a BlobStore and memoizes Resolve results.
//
// Assets are immutable (every Put creates a fresh id), so cached URLs
// never go stale from writes; the TTL exists only because backends like
// S3 hand out presigned URLs with a limited lifetime. Concurrent
// resolves of the same id are collapsed into a single backend call.
type CachingStore struct {
	inner BlobStore
	ttl   time.Duration

	group singleflight.Group
	mu    sync.RWMutex
	urls  map[string]cachedURL
}

type cachedURL struct {
	url       string
	expiresAt time.Time
}

// NewCachingStore creates a new CachingStore.
// ttl defaults to 5 minutes if <= 0; keep it below the inner store's
// URL validity window.
func NewCachingStore(inner BlobStore, ttl time.Duration) *CachingStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingStore{
		inner: inner,
		ttl:   ttl,
		urls:  make(map[string]cachedURL),
	}
}

// Put passes through to the inner store. No invalidation is needed:
// the returned id is always fresh.
func (s *CachingStore) Put(ctx context.Context, content []byte, contentType string) (string, error) {
	return s.inner.Put(ctx, content, contentType)
}

// Resolve returns a cached URL when present, deduplicating concurrent
// backend resolves per asset id.
func (s *CachingStore) Resolve(ctx context.Context, assetID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.urls[assetID]
	s.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.url, nil
	}

	v, err, _ := s.group.Do(assetID, func() (any, error) {
		url, err := s.inner.Resolve(ctx, assetID)
		if err != nil {
			return "", err
		}

		s.mu.Lock()
		s.urls[assetID] = cachedURL{url: url, expiresAt: time.Now().Add(s.ttl)}
		s.mu.Unlock()

		return url, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
