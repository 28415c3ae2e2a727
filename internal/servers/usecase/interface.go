// Package usecase defines business logic interfaces for server templates.
package usecase

import (
	"context"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
)

// ServerTemplateRepository defines persistence operations for server templates.
type ServerTemplateRepository interface {
	// Create stores a new server template.
	Create(ctx context.Context, template *serversDomain.ServerTemplate) error

	// GetByID retrieves a template by ID. Returns ErrServerTemplateNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*serversDomain.ServerTemplate, error)

	// List retrieves all templates ordered by server name.
	List(ctx context.Context) ([]*serversDomain.ServerTemplate, error)

	// Delete removes a template by ID. Deleting an absent template is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServerTemplateUseCase manages dispatch server templates. Reads are open to
// any authenticated key; mutations require an admin or better.
type ServerTemplateUseCase interface {
	// Create adds a new server template. The command format must contain the
	// target placeholder.
	Create(
		ctx context.Context,
		actor *accessDomain.Key,
		input *serversDomain.CreateServerTemplateInput,
	) (*serversDomain.ServerTemplate, error)

	// List returns all server templates.
	List(ctx context.Context, actor *accessDomain.Key) ([]*serversDomain.ServerTemplate, error)

	// Delete removes a server template. Absent IDs succeed silently.
	Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error
}
