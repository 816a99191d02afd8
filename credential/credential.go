// Package credential provides one-way hashing for stored secrets.
//
// Profile records never hold the raw secret; they hold the salted hash
// produced here, and login verifies the claimed secret against it.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes secrets for storage and verifies claimed secrets
// against stored hashes.
type Hasher interface {
	// Hash returns the storable form of secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the stored hash.
	Verify(hashed, secret string) bool
}

// BcryptHasher implements Hasher using bcrypt with a per-secret salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher.
// cost <= 0 selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(out), nil
}

// Verify reports whether secret matches the stored bcrypt hash.
func (h *BcryptHasher) Verify(hashed, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
