package blobstore

import (
	"context"
	"errors"
	"mime"
)

// ErrNotFound is returned when an asset id does not resolve to a stored
// object.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`.
var ErrNotFound = errors.New("asset not found")

// BlobStore is an abstraction for the binary object store holding
// profile picture assets. Assets are append-only: every Put creates a
// fresh object under a fresh id, never overwriting an existing one, so
// an in-flight read of an old asset can never observe a concurrent
// update. Implementations must be safe for concurrent use.
type BlobStore interface {
	// Put stores content as a new asset and returns its generated id.
	Put(ctx context.Context, content []byte, contentType string) (string, error)

	// Resolve returns a URL at which the asset can be read.
	Resolve(ctx context.Context, assetID string) (string, error)
}

// ExtensionFor maps a MIME content type to a file extension (including
// the leading dot), or "" if the type is unknown. Generated asset ids
// carry the extension so stored objects keep a usable suffix.
func ExtensionFor(contentType string) string {
	// Prefer the common spellings; mime.ExtensionsByType ordering is
	// platform dependent.
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
