package profilestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/profilestore/blobstore"
	"github.com/hupe1980/profilestore/credential"
	"github.com/hupe1980/profilestore/docstore"
	"github.com/hupe1980/profilestore/entitystore"
)

// Store composes the entity, blob and document stores into profile
// level operations.
//
// Store holds no mutable state of its own; all state lives in the
// backing stores. Operations on different emails need no coordination;
// concurrent updates of the same email race with last-upsert-wins
// semantics. No cross-store transaction exists: atomicity is
// approximated by ordering only, an asset is always durably stored
// before any record references it.
type Store struct {
	entities  entitystore.EntityStore
	assets    blobstore.BlobStore
	documents docstore.DocumentStore
	hasher    credential.Hasher
	logger    *Logger
}

// New creates a Store over the given adapters.
func New(entities entitystore.EntityStore, assets blobstore.BlobStore, documents docstore.DocumentStore, optFns ...Option) *Store {
	opts := options{
		logger: NoopLogger(),
		hasher: credential.NewBcryptHasher(0),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Store{
		entities:  entities,
		assets:    assets,
		documents: documents,
		hasher:    opts.hasher,
		logger:    opts.logger,
	}
}

// LoginResult is the outcome of a successful Login. Token is an opaque
// identity token for the calling layer to carry across requests; the
// Store keeps no session state.
type LoginResult struct {
	Token   string
	Profile *Profile
}

// Attachment is the outcome of a successful AttachDocument. Profile is
// display context only and is empty when no record exists for the
// email.
type Attachment struct {
	Ref     string
	Profile *Profile
}

// Register creates a new account. The picture asset is uploaded first;
// only then is the record created, so a committed record always
// references a durably stored asset. A duplicate email fails with
// ErrDuplicateAccount and leaves the first record unchanged (the blob
// uploaded for the losing attempt is orphaned, which is accepted).
func (s *Store) Register(ctx context.Context, in RegisterInput) (*Profile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Credential)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}

	assetID, err := s.assets.Put(ctx, in.Picture, in.PictureContentType)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrAssetUploadFailed, storeFault("blob", "put", "register/upload-picture", err))
		s.logger.LogOperation(ctx, "register", in.Email, err)
		return nil, err
	}

	rec := entitystore.Record{
		Email:          in.Email,
		FullName:       in.FullName,
		Credential:     hashed,
		PictureAssetID: assetID,
	}

	if err := s.entities.CreateIfAbsent(ctx, rec); err != nil {
		if errors.Is(err, entitystore.ErrAlreadyExists) {
			err = ErrDuplicateAccount
		} else {
			err = storeFault("entity", "createIfAbsent", "register/commit-record", err)
		}
		s.logger.LogOperation(ctx, "register", in.Email, err)
		return nil, err
	}

	s.logger.LogOperation(ctx, "register", in.Email, nil)
	return s.profileView(ctx, rec)
}

// Login verifies the claimed secret for the given email. An unknown
// email and a wrong secret are indistinguishable: both return
// ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email, secret string) (*LoginResult, error) {
	rec, err := s.entities.Get(ctx, email)
	if err != nil {
		if errors.Is(err, entitystore.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		err = storeFault("entity", "get", "login/get-record", err)
		s.logger.LogOperation(ctx, "login", email, err)
		return nil, err
	}

	if !s.hasher.Verify(rec.Credential, secret) {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileView(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.logger.LogOperation(ctx, "login", email, nil)
	return &LoginResult{
		Token:   uuid.NewString(),
		Profile: profile,
	}, nil
}

// Fetch returns the profile for the given email. An unregistered email
// yields an empty profile, not an error; the caller is an already
// authenticated session that tolerates a missing record as "no profile
// yet". Transport faults still surface as errors.
func (s *Store) Fetch(ctx context.Context, email string) (*Profile, error) {
	rec, err := s.entities.Get(ctx, email)
	if err != nil {
		if errors.Is(err, entitystore.ErrNotFound) {
			return &Profile{}, nil
		}
		err = storeFault("entity", "get", "fetch/get-record", err)
		s.logger.LogOperation(ctx, "fetch", email, err)
		return nil, err
	}
	return s.profileView(ctx, rec)
}

// UpdateProfile replaces the stored name and credential and, when new
// picture bytes are supplied, the picture asset reference. An unknown
// email seeds a fresh record (create-on-update). The new asset is
// durably stored before the record references it; if the committing
// upsert then fails, the record is unchanged and the asset is merely
// orphaned.
func (s *Store) UpdateProfile(ctx context.Context, in UpdateInput) (*Profile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec, err := s.entities.Get(ctx, in.Email)
	if err != nil {
		if !errors.Is(err, entitystore.ErrNotFound) {
			err = storeFault("entity", "get", "update/get-record", err)
			s.logger.LogOperation(ctx, "update", in.Email, err)
			return nil, err
		}
		rec = entitystore.Record{Email: in.Email}
	}

	var newAssetID string
	if len(in.Picture) > 0 {
		newAssetID, err = s.assets.Put(ctx, in.Picture, in.PictureContentType)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrAssetUploadFailed, storeFault("blob", "put", "update/upload-picture", err))
			s.logger.LogOperation(ctx, "update", in.Email, err)
			return nil, err
		}
	}

	hashed, err := s.hasher.Hash(in.Credential)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}
	applyUpdate(&rec, in.FullName, hashed, newAssetID)

	if err := s.entities.Upsert(ctx, rec); err != nil {
		err = fmt.Errorf("%w: %w", ErrProfileUpdateFailed, storeFault("entity", "upsert", "update/commit-record", err))
		s.logger.LogOperation(ctx, "update", in.Email, err)
		return nil, err
	}

	s.logger.LogOperation(ctx, "update", in.Email, nil)
	return s.profileView(ctx, rec)
}

// AttachDocument stores a supporting document under its filename and
// appends the resulting reference to the record's document set. The
// document write does not require a record to exist; the profile in
// the result is display context only. A taken filename fails with
// ErrDocumentNameConflict and leaves the earlier document unaltered.
func (s *Store) AttachDocument(ctx context.Context, email, filename string, content []byte) (*Attachment, error) {
	if filename == "" {
		return nil, &ValidationError{Field: "filename", Reason: "required"}
	}
	if len(content) == 0 {
		return nil, &ValidationError{Field: "content", Reason: "no file content"}
	}

	ref, err := s.documents.CreateOnce(ctx, filename, content)
	if err != nil {
		if errors.Is(err, docstore.ErrAlreadyExists) {
			err = ErrDocumentNameConflict
		} else {
			err = storeFault("document", "createOnce", "attach/write-document", err)
		}
		s.logger.LogOperation(ctx, "attach", email, err)
		return nil, err
	}

	rec, err := s.entities.Get(ctx, email)
	if err != nil {
		if errors.Is(err, entitystore.ErrNotFound) {
			// No record to annotate; the document itself is durably
			// stored.
			s.logger.LogOperation(ctx, "attach", email, nil)
			return &Attachment{Ref: ref, Profile: &Profile{}}, nil
		}
		err = storeFault("entity", "get", "attach/get-record", err)
		s.logger.LogOperation(ctx, "attach", email, err)
		return nil, err
	}

	appendDocumentRef(&rec, ref)
	if err := s.entities.Upsert(ctx, rec); err != nil {
		err = fmt.Errorf("%w: %w", ErrProfileUpdateFailed, storeFault("entity", "upsert", "attach/commit-record", err))
		s.logger.LogOperation(ctx, "attach", email, err)
		return nil, err
	}

	profile, err := s.profileView(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.logger.LogOperation(ctx, "attach", email, nil)
	return &Attachment{Ref: ref, Profile: profile}, nil
}

// profileView builds the caller-facing view of a record, resolving the
// picture asset to a URL when one is referenced.
func (s *Store) profileView(ctx context.Context, rec entitystore.Record) (*Profile, error) {
	p := &Profile{
		Email:          rec.Email,
		FullName:       rec.FullName,
		PictureAssetID: rec.PictureAssetID,
	}
	if len(rec.DocumentRefs) > 0 {
		p.DocumentRefs = make([]string, len(rec.DocumentRefs))
		copy(p.DocumentRefs, rec.DocumentRefs)
	}

	if rec.PictureAssetID != "" {
		url, err := s.assets.Resolve(ctx, rec.PictureAssetID)
		if err != nil {
			return nil, storeFault("blob", "resolve", "view/resolve-picture", err)
		}
		p.PictureURL = url
	}
	return p, nil
}
