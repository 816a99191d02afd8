package docstore

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned by CreateOnce when the path is already
// occupied. Documents are write-once; a name collision is surfaced
// instead of destroying the earlier upload.
var ErrAlreadyExists = errors.New("document already exists")

// DocumentStore is an abstraction for the path-addressed file store
// holding supporting documents. Implementations must be safe for
// concurrent use.
type DocumentStore interface {
	// CreateOnce stores content at the given name and returns a durable
	// reference to it, or ErrAlreadyExists if the name is taken.
	CreateOnce(ctx context.Context, name string, content []byte) (string, error)
}
