package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
)

// MockServerTemplateUseCase is a mock implementation of ServerTemplateUseCase for testing.
type MockServerTemplateUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ServerTemplateUseCase.
func (m *MockServerTemplateUseCase) Create(
	ctx context.Context,
	actor *accessDomain.Key,
	input *serversDomain.CreateServerTemplateInput,
) (*serversDomain.ServerTemplate, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serversDomain.ServerTemplate), args.Error(1)
}

// List mocks the List method of ServerTemplateUseCase.
func (m *MockServerTemplateUseCase) List(
	ctx context.Context,
	actor *accessDomain.Key,
) ([]*serversDomain.ServerTemplate, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serversDomain.ServerTemplate), args.Error(1)
}

// Delete mocks the Delete method of ServerTemplateUseCase.
func (m *MockServerTemplateUseCase) Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
