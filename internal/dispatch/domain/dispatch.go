// Package domain defines the core entities for command dispatch.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/keypanel/keypanel/internal/errors"
)

// DispatchInput contains the parameters for dispatching a command.
type DispatchInput struct {
	ServerID uuid.UUID
	Target   string
}

// Dispatch is the record of a delivered command.
type Dispatch struct {
	ServerName string
	Command    string
	ChatID     string
	SentAt     time.Time
}

var (
	// ErrTargetRequired indicates the dispatch target field is required.
	ErrTargetRequired = errors.Wrap(errors.ErrInvalidInput, "target is required")

	// ErrNotConfigured indicates the messaging settings have not been stored yet,
	// so there is no channel to deliver to.
	ErrNotConfigured = errors.Wrap(errors.ErrUnavailable, "dispatch not configured")

	// ErrDeliveryFailed indicates the messaging API rejected or failed the send.
	ErrDeliveryFailed = errors.Wrap(errors.ErrUnavailable, "dispatch delivery failed")
)
