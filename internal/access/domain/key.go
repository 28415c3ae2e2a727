package domain

import (
	"time"

	"github.com/google/uuid"
)

// Key is an access credential: a shared secret plus the role it grants and the
// username it belongs to. Keys authenticate actors and scope what they may do
// to other keys.
//
// The secret Value is stored verbatim and compared byte-for-byte at
// authentication time. There is no hashing at rest: the panel must be able to
// reveal a key's value to an authorized actor, and rotation replaces the value
// in place. This is a known security trade-off inherited from the system being
// modeled; lookups use a constant-time comparison to avoid adding a timing
// side channel on top of it.
type Key struct {
	ID        uuid.UUID  // Unique identifier (UUIDv7), assigned at creation, immutable
	Username  string     // Unique, case-sensitive lookup/display name
	Value     string     // Unique secret, compared verbatim
	Role      Role       // Capability level, set at creation
	ExpiresAt *time.Time // Optional expiration; nil means the key never expires
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the key's expiration time has passed relative to now.
// Keys without an expiration never expire.
func (k *Key) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}

// CreateKeyInput contains the parameters for creating a new access key.
type CreateKeyInput struct {
	Username  string
	Value     string
	Role      Role
	ExpiresAt *time.Time
}
