// Package service provides access-key secret handling: generation of random
// key values and verbatim secret comparison.
//
// Key values are stored and compared as plain shared secrets. The panel's
// contract requires revealing a key's value to authorized actors and rotating
// it in place, which rules out hashing at rest. That gap is deliberate and
// documented; the comparison at least runs in constant time so lookups do not
// leak prefix information.
package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	apperrors "github.com/keypanel/keypanel/internal/errors"
)

// SecretService generates and compares access key secret values.
type SecretService interface {
	// GenerateValue creates a new cryptographically secure random key value.
	GenerateValue() (string, error)

	// Compare reports whether two secret values are equal, in constant time.
	Compare(a, b string) bool
}

// secretService implements SecretService with crypto/rand and crypto/subtle.
type secretService struct{}

// NewSecretService creates a new SecretService instance.
func NewSecretService() SecretService {
	return &secretService{}
}

// GenerateValue creates a new cryptographically secure 24-byte random value.
// The value is base64 URL-encoded for easy transmission and storage.
func (s *secretService) GenerateValue() (string, error) {
	randomBytes := make([]byte, 24)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate random key value")
	}
	return base64.URLEncoding.EncodeToString(randomBytes), nil
}

// Compare performs a constant-time comparison of two secret values.
func (s *secretService) Compare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
