package entitystore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists for the requested key.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`.
var ErrNotFound = errors.New("entity not found")

// ErrAlreadyExists is returned by CreateIfAbsent when a record with the
// same key has already been committed.
var ErrAlreadyExists = errors.New("entity already exists")

// Record is the storage shape of a user profile. Email doubles as the
// row key and is immutable after creation.
type Record struct {
	Email          string
	FullName       string
	Credential     string
	PictureAssetID string
	DocumentRefs   []string
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.DocumentRefs != nil {
		out.DocumentRefs = make([]string, len(r.DocumentRefs))
		copy(out.DocumentRefs, r.DocumentRefs)
	}
	return out
}

// EntityStore is an abstraction for the keyed record store holding user
// profiles. Implementations must be safe for concurrent use and must
// provide atomic single-key operations; CreateIfAbsent in particular
// must be exactly-once per key.
type EntityStore interface {
	// Get returns the record for the given email, or ErrNotFound.
	Get(ctx context.Context, email string) (Record, error)

	// Upsert writes the record unconditionally, creating or replacing it.
	Upsert(ctx context.Context, rec Record) error

	// CreateIfAbsent writes the record only if no record exists for its
	// email, returning ErrAlreadyExists otherwise.
	CreateIfAbsent(ctx context.Context, rec Record) error
}
