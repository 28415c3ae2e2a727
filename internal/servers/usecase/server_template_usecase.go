package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
	"github.com/keypanel/keypanel/internal/validation"
)

// DefaultServerTemplateUseCase implements ServerTemplateUseCase.
type DefaultServerTemplateUseCase struct {
	serverTemplateRepository ServerTemplateRepository
}

// Create adds a new server template on behalf of an admin or better.
func (d *DefaultServerTemplateUseCase) Create(
	ctx context.Context,
	actor *accessDomain.Key,
	input *serversDomain.CreateServerTemplateInput,
) (*serversDomain.ServerTemplate, error) {
	if !actor.Role.Outranks(accessDomain.RoleUser) {
		return nil, accessDomain.ErrNotPermitted
	}

	if strings.TrimSpace(input.ServerName) == "" {
		return nil, serversDomain.ErrServerNameRequired
	}
	if !strings.Contains(input.CommandFormat, validation.TargetPlaceholder) {
		return nil, serversDomain.ErrCommandFormatInvalid
	}

	template := &serversDomain.ServerTemplate{
		ID:            uuid.Must(uuid.NewV7()),
		ServerName:    input.ServerName,
		CommandFormat: input.CommandFormat,
		CreatedAt:     time.Now().UTC(),
	}

	if err := d.serverTemplateRepository.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("DefaultServerTemplateUseCase.Create: %w", err)
	}

	return template, nil
}

// List returns all server templates. Any authenticated key may read them.
func (d *DefaultServerTemplateUseCase) List(
	ctx context.Context,
	actor *accessDomain.Key,
) ([]*serversDomain.ServerTemplate, error) {
	templates, err := d.serverTemplateRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("DefaultServerTemplateUseCase.List: %w", err)
	}
	return templates, nil
}

// Delete removes a server template on behalf of an admin or better.
func (d *DefaultServerTemplateUseCase) Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error {
	if !actor.Role.Outranks(accessDomain.RoleUser) {
		return accessDomain.ErrNotPermitted
	}

	if err := d.serverTemplateRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("DefaultServerTemplateUseCase.Delete: %w", err)
	}
	return nil
}

// NewDefaultServerTemplateUseCase creates a new DefaultServerTemplateUseCase.
func NewDefaultServerTemplateUseCase(serverTemplateRepository ServerTemplateRepository) *DefaultServerTemplateUseCase {
	return &DefaultServerTemplateUseCase{serverTemplateRepository: serverTemplateRepository}
}
