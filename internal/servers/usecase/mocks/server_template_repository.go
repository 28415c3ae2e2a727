// Package mocks provides mock implementations for server template testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
)

// MockServerTemplateRepository is a mock implementation of ServerTemplateRepository for testing.
type MockServerTemplateRepository struct {
	mock.Mock
}

// Create mocks the Create method of ServerTemplateRepository.
func (m *MockServerTemplateRepository) Create(ctx context.Context, template *serversDomain.ServerTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

// GetByID mocks the GetByID method of ServerTemplateRepository.
func (m *MockServerTemplateRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*serversDomain.ServerTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serversDomain.ServerTemplate), args.Error(1)
}

// List mocks the List method of ServerTemplateRepository.
func (m *MockServerTemplateRepository) List(ctx context.Context) ([]*serversDomain.ServerTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serversDomain.ServerTemplate), args.Error(1)
}

// Delete mocks the Delete method of ServerTemplateRepository.
func (m *MockServerTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
