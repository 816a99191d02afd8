// Package profilestore unifies entity, blob and document persistence
// behind atomic-looking profile operations.
//
// A logical profile write spans a keyed record and one or more binary
// assets with no transaction covering both. The Store bounds the
// resulting inconsistency with a single ordering rule: an asset is
// always durably stored before any record references it. A failed
// commit can therefore orphan an asset, but never produce a record
// pointing at a missing one.
//
// # Quick Start
//
//	store := profilestore.New(
//	    entitystore.NewMemoryStore(),
//	    blobstore.NewMemoryStore(),
//	    docstore.NewMemoryStore(),
//	)
//
//	profile, err := store.Register(ctx, profilestore.RegisterInput{
//	    Email:              "ada@example.com",
//	    FullName:           "Ada Lovelace",
//	    Credential:         "secret",
//	    Picture:            pictureBytes,
//	    PictureContentType: "image/png",
//	})
//
// Cloud mode composes the DynamoDB, S3 and MinIO adapters instead; see
// the config package for env-driven wiring:
//
//	cfg, _ := config.Load()
//	store, _ := cfg.Build(ctx)
//
// # Operations
//
//   - Register: picture upload, then conditional record create.
//     Duplicate emails fail with ErrDuplicateAccount.
//   - Login: credential check; unknown email and wrong secret are
//     indistinguishable. Returns an opaque token for the caller's
//     session layer.
//   - Fetch: read; an unregistered email yields an empty profile.
//   - UpdateProfile: full replace of name/credential, conditional
//     replace of the picture reference, one committing upsert.
//   - AttachDocument: write-once document creation plus an append-only
//     reference on the record.
//
// All faults from the backing stores are wrapped in *StoreError, tagged
// with the adapter and the step that failed, and match
// ErrStoreUnavailable via errors.Is. The Store never retries; retries
// and timeouts belong to the adapters or the caller, which propagates
// cancellation through ctx.
package profilestore
