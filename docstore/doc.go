// Package docstore provides the path-addressed file store abstraction
// that holds supporting documents.
//
// Documents are write-once: creating a name that already exists fails
// rather than silently overwriting the earlier upload.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory map, for tests and embedding
//   - minio.Store: MinIO / S3-compatible storage
package docstore
