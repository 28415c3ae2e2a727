package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	accessService "github.com/keypanel/keypanel/internal/access/service"
	"github.com/keypanel/keypanel/internal/database"
	"github.com/keypanel/keypanel/internal/errors"
)

// DefaultKeyUseCase implements KeyUseCase.
type DefaultKeyUseCase struct {
	txManager       database.TxManager
	keyRepository   KeyRepository
	auditLogUseCase AuditLogUseCase
	secretService   accessService.SecretService
}

// Create adds a new key after validating the input, checking uniqueness, and
// consulting the role assignment rule. The key and its "created" audit entry
// are written in one transaction so the entry cannot exist for a key that was
// never persisted, or vice versa.
func (d *DefaultKeyUseCase) Create(
	ctx context.Context,
	actor *accessDomain.Key,
	input *accessDomain.CreateKeyInput,
) (*accessDomain.Key, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, accessDomain.ErrUsernameRequired
	}
	if strings.TrimSpace(input.Value) == "" {
		return nil, accessDomain.ErrKeyValueRequired
	}
	if !input.Role.Valid() {
		return nil, errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown role %q", input.Role))
	}

	if err := d.ensureUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := d.ensureValueFree(ctx, input.Value, uuid.Nil); err != nil {
		return nil, err
	}

	if !accessDomain.CanAssignRole(actor.Role, input.Role) {
		return nil, accessDomain.ErrNotPermitted
	}

	now := time.Now().UTC()
	key := &accessDomain.Key{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  input.Username,
		Value:     input.Value,
		Role:      input.Role,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := d.keyRepository.Create(ctx, key); err != nil {
			return err
		}
		// Audit only after the key is persisted. The shared transaction keeps
		// the entry and the key atomic.
		_, err := d.auditLogUseCase.Record(ctx, actor, accessDomain.AuditActionCreated, key)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("DefaultKeyUseCase.Create: %w", err)
	}

	return key, nil
}

// Delete removes a key and records a "deleted" audit entry built from the
// pre-deletion snapshot. An absent ID is treated as success with no entry.
func (d *DefaultKeyUseCase) Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error {
	target, err := d.keyRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accessDomain.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("DefaultKeyUseCase.Delete: %w", err)
	}

	if !accessDomain.CanDelete(actor.Role, actor.Value, target) {
		return accessDomain.ErrNotPermitted
	}

	err = d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := d.auditLogUseCase.Record(ctx, actor, accessDomain.AuditActionDeleted, target); err != nil {
			return err
		}
		return d.keyRepository.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("DefaultKeyUseCase.Delete: %w", err)
	}

	return nil
}

// Rotate replaces the actor's own secret value. Rotation is not a privileged
// action against another principal, so it produces no audit entry.
func (d *DefaultKeyUseCase) Rotate(
	ctx context.Context,
	actor *accessDomain.Key,
	newValue string,
) (*accessDomain.Key, error) {
	if strings.TrimSpace(newValue) == "" {
		return nil, accessDomain.ErrKeyValueRequired
	}

	if err := d.ensureValueFree(ctx, newValue, actor.ID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := d.keyRepository.UpdateValue(ctx, actor.ID, newValue, now); err != nil {
		return nil, fmt.Errorf("DefaultKeyUseCase.Rotate: %w", err)
	}

	updated := *actor
	updated.Value = newValue
	updated.UpdatedAt = now
	return &updated, nil
}

// RevealValue returns the target key's secret value. A key holder may always
// see their own value; everything else goes through the visibility rule.
func (d *DefaultKeyUseCase) RevealValue(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) (string, error) {
	target, err := d.keyRepository.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("DefaultKeyUseCase.RevealValue: %w", err)
	}

	if target.ID != actor.ID && !accessDomain.CanViewValue(actor.Role, target) {
		return "", accessDomain.ErrNotPermitted
	}

	return target.Value, nil
}

// List returns all keys. Secret values the actor may not view are blanked so
// the transport layer never has to decide what to hide.
func (d *DefaultKeyUseCase) List(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.Key, error) {
	keys, err := d.keyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultKeyUseCase.List: %w", err)
	}

	result := make([]*accessDomain.Key, 0, len(keys))
	for _, key := range keys {
		visible := *key
		if key.ID != actor.ID && !accessDomain.CanViewValue(actor.Role, key) {
			visible.Value = ""
		}
		result = append(result, &visible)
	}

	return result, nil
}

// History returns the audit log for admins and above.
func (d *DefaultKeyUseCase) History(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.AuditLog, error) {
	if !actor.Role.Outranks(accessDomain.RoleUser) {
		return nil, accessDomain.ErrNotPermitted
	}

	entries, err := d.auditLogUseCase.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultKeyUseCase.History: %w", err)
	}
	return entries, nil
}

// ClearHistory wipes the audit log. Developer only.
func (d *DefaultKeyUseCase) ClearHistory(ctx context.Context, actor *accessDomain.Key) error {
	if actor.Role != accessDomain.RoleDeveloper {
		return accessDomain.ErrNotPermitted
	}

	if err := d.auditLogUseCase.Clear(ctx); err != nil {
		return fmt.Errorf("DefaultKeyUseCase.ClearHistory: %w", err)
	}
	return nil
}

// Seed creates the initial developer key when the store is empty. It bypasses
// the permission rules (there is no actor yet) and writes no audit entry. A
// non-empty store makes Seed a no-op, so running bootstrap twice is safe.
func (d *DefaultKeyUseCase) Seed(ctx context.Context, username, value string) (*accessDomain.Key, bool, error) {
	if strings.TrimSpace(username) == "" {
		return nil, false, accessDomain.ErrUsernameRequired
	}

	if value == "" {
		generated, err := d.secretService.GenerateValue()
		if err != nil {
			return nil, false, fmt.Errorf("DefaultKeyUseCase.Seed: %w", err)
		}
		value = generated
	}

	var key *accessDomain.Key
	var seeded bool

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		count, err := d.keyRepository.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		key = &accessDomain.Key{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  username,
			Value:     value,
			Role:      accessDomain.RoleDeveloper,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := d.keyRepository.Create(ctx, key); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("DefaultKeyUseCase.Seed: %w", err)
	}

	return key, seeded, nil
}

func (d *DefaultKeyUseCase) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := d.keyRepository.GetByUsername(ctx, username)
	if err == nil {
		return accessDomain.ErrUsernameTaken
	}
	if errors.Is(err, accessDomain.ErrKeyNotFound) {
		return nil
	}
	return fmt.Errorf("DefaultKeyUseCase.ensureUsernameFree: %w", err)
}

// ensureValueFree rejects a secret value already held by a different key.
// selfID lets rotation re-submit the caller's current value without conflict.
func (d *DefaultKeyUseCase) ensureValueFree(ctx context.Context, value string, selfID uuid.UUID) error {
	existing, err := d.keyRepository.GetByValue(ctx, value)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return accessDomain.ErrKeyValueTaken
	}
	if errors.Is(err, accessDomain.ErrKeyNotFound) {
		return nil
	}
	return fmt.Errorf("DefaultKeyUseCase.ensureValueFree: %w", err)
}

// NewDefaultKeyUseCase creates a new DefaultKeyUseCase.
func NewDefaultKeyUseCase(
	txManager database.TxManager,
	keyRepository KeyRepository,
	auditLogUseCase AuditLogUseCase,
	secretService accessService.SecretService,
) *DefaultKeyUseCase {
	return &DefaultKeyUseCase{
		txManager:       txManager,
		keyRepository:   keyRepository,
		auditLogUseCase: auditLogUseCase,
		secretService:   secretService,
	}
}
