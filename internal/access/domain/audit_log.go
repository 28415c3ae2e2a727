package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the privileged key operation an audit entry records.
type AuditAction string

const (
	// AuditActionCreated records a key creation.
	AuditActionCreated AuditAction = "created"

	// AuditActionDeleted records a key deletion.
	AuditActionDeleted AuditAction = "deleted"
)

// Valid reports whether a is a defined audit action.
func (a AuditAction) Valid() bool {
	return a == AuditActionCreated || a == AuditActionDeleted
}

// AuditLog records a privileged create or delete action on an access key.
// Usernames and the target role are snapshots taken at the time of the action,
// not live references: reusing a username later does not rewrite history.
// Entries are immutable once written; the log only ever grows by appending or
// shrinks by a bulk wipe.
type AuditLog struct {
	ID             uuid.UUID
	ActorUsername  string
	TargetUsername string
	Action         AuditAction
	TargetRole     Role
	CreatedAt      time.Time // Assigned by the audit log service, never client-supplied
}
