// Package usecase defines business logic interfaces for authentication,
// key lifecycle, and audit logging.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// KeyRepository defines persistence operations for access keys.
// Implementations must support transaction-aware operations via context propagation.
type KeyRepository interface {
	// Create stores a new key in the repository.
	Create(ctx context.Context, key *accessDomain.Key) error

	// GetByID retrieves a key by ID. Returns ErrKeyNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*accessDomain.Key, error)

	// GetByUsername retrieves a key by its case-sensitive username.
	// Returns ErrKeyNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*accessDomain.Key, error)

	// GetByValue retrieves a key by its secret value. Returns ErrKeyNotFound if not found.
	GetByValue(ctx context.Context, value string) (*accessDomain.Key, error)

	// List retrieves all keys ordered by creation time ascending.
	List(ctx context.Context) ([]*accessDomain.Key, error)

	// Count returns the number of live keys.
	Count(ctx context.Context) (int64, error)

	// UpdateValue replaces a key's secret value in place.
	UpdateValue(ctx context.Context, id uuid.UUID, value string, updatedAt time.Time) error

	// Delete removes a key by ID. Deleting an absent key is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuditLogRepository defines persistence operations for audit log entries.
type AuditLogRepository interface {
	// Create stores a new audit log entry.
	Create(ctx context.Context, entry *accessDomain.AuditLog) error

	// List retrieves all entries ordered by creation time descending.
	List(ctx context.Context) ([]*accessDomain.AuditLog, error)

	// DeleteAll wipes the audit log.
	DeleteAll(ctx context.Context) error
}

// AuthUseCase authenticates username/secret pairs against the key store.
type AuthUseCase interface {
	// Authenticate verifies a username/secret pair and returns the matching key.
	//
	// Returns ErrInvalidKey when no live key matches the pair, and ErrKeyExpired
	// when the pair matches a key whose expiration time has passed. The two are
	// deliberately distinct: an expired-key response reveals the pair was once
	// valid, a policy choice inherited from the system being modeled.
	//
	// Authentication has no side effects beyond the lookup.
	Authenticate(ctx context.Context, username, secret string) (*accessDomain.Key, error)
}

// AuditLogUseCase owns audit entry creation exclusively: no other component
// may author entries. Entries are immutable once recorded.
type AuditLogUseCase interface {
	// Record appends an entry for a privileged action, snapshotting the actor
	// and target usernames and the target role at the time of the action.
	// The timestamp is assigned here, never by the caller.
	Record(
		ctx context.Context,
		actor *accessDomain.Key,
		action accessDomain.AuditAction,
		target *accessDomain.Key,
	) (*accessDomain.AuditLog, error)

	// List returns a snapshot of all entries, newest first. An empty slice is a
	// valid, non-error result.
	List(ctx context.Context) ([]*accessDomain.AuditLog, error)

	// Clear wipes the log unconditionally. Restricting this to developer actors
	// is the caller's responsibility, not this service's.
	Clear(ctx context.Context) error
}

// KeyUseCase orchestrates the access key lifecycle. Every mutating or
// disclosure operation consults exactly one permission rule before touching
// the store, and privileged create/delete actions are recorded in the audit
// log. Each call is independent: there is no session state beyond the actor's
// already-authenticated key.
type KeyUseCase interface {
	// Create adds a new key on behalf of actor and records a "created" audit
	// entry. The audit entry is written only after the key has been persisted.
	Create(ctx context.Context, actor *accessDomain.Key, input *accessDomain.CreateKeyInput) (*accessDomain.Key, error)

	// Delete removes the key with the given ID on behalf of actor, recording a
	// "deleted" audit entry from the pre-deletion snapshot. Deleting an absent
	// ID succeeds without an audit entry: delete is safe to retry.
	Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error

	// Rotate replaces the actor's own secret value in place. Identity, role, and
	// username are unchanged, and no audit entry is produced. The actor's prior
	// secret stops authenticating immediately.
	Rotate(ctx context.Context, actor *accessDomain.Key, newValue string) (*accessDomain.Key, error)

	// RevealValue returns the secret value of the target key if the permission
	// rules allow the actor to see it. Pure read; disclosure is not audited.
	RevealValue(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) (string, error)

	// List returns all keys with secret values blanked for targets the actor is
	// not permitted to view.
	List(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.Key, error)

	// History returns the audit log, newest first. Requires an admin or better.
	History(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.AuditLog, error)

	// ClearHistory wipes the audit log. Requires a developer.
	ClearHistory(ctx context.Context, actor *accessDomain.Key) error

	// Seed creates the initial developer key when the store is empty. It is the
	// only creation path that bypasses the permission rules (there is no actor
	// yet) and must stay behind an explicit bootstrap step. Returns false when
	// the store already holds keys.
	Seed(ctx context.Context, username, value string) (*accessDomain.Key, bool, error)
}
