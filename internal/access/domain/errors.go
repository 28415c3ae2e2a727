package domain

import (
	"github.com/keypanel/keypanel/internal/errors"
)

// Access control errors.
var (
	// ErrKeyNotFound indicates a key with the specified ID was not found.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrInvalidKey indicates the username/secret pair matched no live key.
	ErrInvalidKey = errors.Wrap(errors.ErrUnauthorized, "invalid access key")

	// ErrKeyExpired indicates the pair matched a key whose expiration has passed.
	// Deliberately distinct from ErrInvalidKey: it reveals the pair was once valid.
	ErrKeyExpired = errors.Wrap(errors.ErrExpired, "access key expired")

	// ErrUsernameTaken indicates another live key already holds the username.
	ErrUsernameTaken = errors.Wrap(errors.ErrConflict, "username already in use")

	// ErrKeyValueTaken indicates another live key already holds the secret value.
	ErrKeyValueTaken = errors.Wrap(errors.ErrConflict, "key value already in use")

	// ErrNotPermitted indicates the permission rules rejected the operation.
	ErrNotPermitted = errors.Wrap(errors.ErrForbidden, "operation not permitted for this role")

	// ErrUsernameRequired indicates the username field is required.
	ErrUsernameRequired = errors.Wrap(errors.ErrInvalidInput, "username is required")

	// ErrKeyValueRequired indicates the key value field is required.
	ErrKeyValueRequired = errors.Wrap(errors.ErrInvalidInput, "key value is required")
)
