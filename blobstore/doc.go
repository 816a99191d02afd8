// Package blobstore provides the binary object store abstraction that
// holds profile picture assets.
//
// Every Put creates a fresh object under a generated id; assets are
// never overwritten in place. Resolve maps a stored id to a URL the
// calling layer can hand to a browser.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory map, for tests and embedding
//   - s3.Store: Amazon S3 with managed uploads and presigned URLs
//
// # Wrappers
//
//   - CachingStore: memoizes Resolve with singleflight deduplication
//   - LimitedStore: caps upload concurrency and byte throughput
package blobstore
