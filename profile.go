package profilestore

import (
	"strings"

	"github.com/hupe1980/profilestore/entitystore"
)

// Profile is the caller-facing view of a user profile. It never carries
// the stored credential.
type Profile struct {
	Email          string
	FullName       string
	PictureAssetID string
	PictureURL     string
	DocumentRefs   []string
}

// RegisterInput carries the fields for account creation. Picture is
// mandatory: an account is never created without its picture asset.
type RegisterInput struct {
	Email              string
	FullName           string
	Credential         string
	Picture            []byte
	PictureContentType string
}

func (in RegisterInput) validate() error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if in.FullName == "" {
		return &ValidationError{Field: "fullName", Reason: "required"}
	}
	if len(in.Picture) == 0 {
		return &ValidationError{Field: "picture", Reason: "a profile picture is required"}
	}
	return nil
}

// UpdateInput carries a profile update. FullName and Credential replace
// the stored values unconditionally; Picture, when present, replaces
// the picture asset reference, otherwise the prior asset is kept.
type UpdateInput struct {
	Email              string
	FullName           string
	Credential         string
	Picture            []byte
	PictureContentType string
}

func (in UpdateInput) validate() error {
	return validateEmail(in.Email)
}

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "not an email address"}
	}
	return nil
}

// applyUpdate merges an update into the stored record: full replace of
// name and credential, conditional replace of the picture reference.
func applyUpdate(rec *entitystore.Record, fullName, hashedCredential, newAssetID string) {
	rec.FullName = fullName
	rec.Credential = hashedCredential
	if newAssetID != "" {
		rec.PictureAssetID = newAssetID
	}
}

// appendDocumentRef adds ref to the record's append-only document set.
func appendDocumentRef(rec *entitystore.Record, ref string) {
	for _, existing := range rec.DocumentRefs {
		if existing == ref {
			return
		}
	}
	rec.DocumentRefs = append(rec.DocumentRefs, ref)
}
