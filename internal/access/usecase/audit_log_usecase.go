package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// DefaultAuditLogUseCase implements AuditLogUseCase backed by an
// AuditLogRepository. It is the sole author of audit entries.
type DefaultAuditLogUseCase struct {
	auditLogRepository AuditLogRepository
}

// Record appends a new audit entry. Usernames and the target role are copied
// into the entry so it stays meaningful after the target key is deleted.
func (d *DefaultAuditLogUseCase) Record(
	ctx context.Context,
	actor *accessDomain.Key,
	action accessDomain.AuditAction,
	target *accessDomain.Key,
) (*accessDomain.AuditLog, error) {
	entry := &accessDomain.AuditLog{
		ID:             uuid.Must(uuid.NewV7()),
		ActorUsername:  actor.Username,
		TargetUsername: target.Username,
		Action:         action,
		TargetRole:     target.Role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := d.auditLogRepository.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("DefaultAuditLogUseCase.Record: %w", err)
	}

	return entry, nil
}

// List returns all audit entries, newest first.
func (d *DefaultAuditLogUseCase) List(ctx context.Context) ([]*accessDomain.AuditLog, error) {
	entries, err := d.auditLogRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultAuditLogUseCase.List: %w", err)
	}
	return entries, nil
}

// Clear wipes the audit log.
func (d *DefaultAuditLogUseCase) Clear(ctx context.Context) error {
	if err := d.auditLogRepository.DeleteAll(ctx); err != nil {
		return fmt.Errorf("DefaultAuditLogUseCase.Clear: %w", err)
	}
	return nil
}

// NewDefaultAuditLogUseCase creates a new DefaultAuditLogUseCase.
func NewDefaultAuditLogUseCase(auditLogRepository AuditLogRepository) *DefaultAuditLogUseCase {
	return &DefaultAuditLogUseCase{auditLogRepository: auditLogRepository}
}
