package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	"github.com/keypanel/keypanel/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (k *keyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "access", operation, status)
	k.metrics.RecordDuration(ctx, "access", operation, time.Since(start), status)
}

// Create records metrics for key creation.
func (k *keyUseCaseWithMetrics) Create(
	ctx context.Context,
	actor *accessDomain.Key,
	input *accessDomain.CreateKeyInput,
) (*accessDomain.Key, error) {
	start := time.Now()
	key, err := k.next.Create(ctx, actor, input)
	k.record(ctx, "key_create", start, err)
	return key, err
}

// Delete records metrics for key deletion.
func (k *keyUseCaseWithMetrics) Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error {
	start := time.Now()
	err := k.next.Delete(ctx, actor, id)
	k.record(ctx, "key_delete", start, err)
	return err
}

// Rotate records metrics for secret rotation.
func (k *keyUseCaseWithMetrics) Rotate(
	ctx context.Context,
	actor *accessDomain.Key,
	newValue string,
) (*accessDomain.Key, error) {
	start := time.Now()
	key, err := k.next.Rotate(ctx, actor, newValue)
	k.record(ctx, "key_rotate", start, err)
	return key, err
}

// RevealValue records metrics for secret disclosure.
func (k *keyUseCaseWithMetrics) RevealValue(
	ctx context.Context,
	actor *accessDomain.Key,
	id uuid.UUID,
) (string, error) {
	start := time.Now()
	value, err := k.next.RevealValue(ctx, actor, id)
	k.record(ctx, "key_reveal", start, err)
	return value, err
}

// List records metrics for key listing.
func (k *keyUseCaseWithMetrics) List(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.Key, error) {
	start := time.Now()
	keys, err := k.next.List(ctx, actor)
	k.record(ctx, "key_list", start, err)
	return keys, err
}

// History records metrics for audit log reads.
func (k *keyUseCaseWithMetrics) History(
	ctx context.Context,
	actor *accessDomain.Key,
) ([]*accessDomain.AuditLog, error) {
	start := time.Now()
	entries, err := k.next.History(ctx, actor)
	k.record(ctx, "history_list", start, err)
	return entries, err
}

// ClearHistory records metrics for audit log wipes.
func (k *keyUseCaseWithMetrics) ClearHistory(ctx context.Context, actor *accessDomain.Key) error {
	start := time.Now()
	err := k.next.ClearHistory(ctx, actor)
	k.record(ctx, "history_clear", start, err)
	return err
}

// Seed records metrics for bootstrap seeding.
func (k *keyUseCaseWithMetrics) Seed(ctx context.Context, username, value string) (*accessDomain.Key, bool, error) {
	start := time.Now()
	key, seeded, err := k.next.Seed(ctx, username, value)
	k.record(ctx, "key_seed", start, err)
	return key, seeded, err
}
