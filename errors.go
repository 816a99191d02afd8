package profilestore

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAccount is returned by Register when the email is
	// already taken.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// email and a wrong secret; the two cases are deliberately
	// indistinguishable to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or credential")

	// ErrDocumentNameConflict is returned by AttachDocument when the
	// filename is already taken; the earlier document is untouched.
	ErrDocumentNameConflict = errors.New("document name conflict")

	// ErrStoreUnavailable matches any wrapped adapter fault via
	// errors.Is.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAssetUploadFailed is returned when a picture upload fails.
	// Nothing has been committed: the record write never ran.
	ErrAssetUploadFailed = errors.New("asset upload failed")

	// ErrProfileUpdateFailed is returned when the committing record
	// write fails after any asset writes already succeeded. The record
	// is unchanged; a freshly written asset may be orphaned.
	ErrProfileUpdateFailed = errors.New("profile update failed")
)

// ValidationError indicates missing or malformed input. No store write
// has been attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// StoreError wraps an adapter fault with the adapter that failed and
// the step of the operation it failed at, so callers can tell whether
// anything was written before the fault.
//
// The original underlying error can be accessed via errors.Unwrap.
type StoreError struct {
	Store string // "entity", "blob" or "document"
	Op    string // adapter operation, e.g. "createIfAbsent"
	Step  string // operation step, e.g. "register/upload-picture"
	cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store failed during %s (%s): %v", e.Store, e.Step, e.Op, e.cause)
}

func (e *StoreError) Unwrap() error { return e.cause }

// Is reports true for ErrStoreUnavailable: every adapter fault is a
// store-unavailable condition.
func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

func storeFault(store, op, step string, cause error) *StoreError {
	return &StoreError{Store: store, Op: op, Step: step, cause: cause}
}
