package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// MockKeyUseCase is a mock implementation of KeyUseCase for testing.
type MockKeyUseCase struct {
	mock.Mock
}

// Create mocks the Create method of KeyUseCase.
func (m *MockKeyUseCase) Create(
	ctx context.Context,
	actor *accessDomain.Key,
	input *accessDomain.CreateKeyInput,
) (*accessDomain.Key, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}

// Delete mocks the Delete method of KeyUseCase.
func (m *MockKeyUseCase) Delete(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// Rotate mocks the Rotate method of KeyUseCase.
func (m *MockKeyUseCase) Rotate(
	ctx context.Context,
	actor *accessDomain.Key,
	newValue string,
) (*accessDomain.Key, error) {
	args := m.Called(ctx, actor, newValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}

// RevealValue mocks the RevealValue method of KeyUseCase.
func (m *MockKeyUseCase) RevealValue(ctx context.Context, actor *accessDomain.Key, id uuid.UUID) (string, error) {
	args := m.Called(ctx, actor, id)
	return args.String(0), args.Error(1)
}

// List mocks the List method of KeyUseCase.
func (m *MockKeyUseCase) List(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.Key, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.Key), args.Error(1)
}

// History mocks the History method of KeyUseCase.
func (m *MockKeyUseCase) History(ctx context.Context, actor *accessDomain.Key) ([]*accessDomain.AuditLog, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.AuditLog), args.Error(1)
}

// ClearHistory mocks the ClearHistory method of KeyUseCase.
func (m *MockKeyUseCase) ClearHistory(ctx context.Context, actor *accessDomain.Key) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

// Seed mocks the Seed method of KeyUseCase.
func (m *MockKeyUseCase) Seed(ctx context.Context, username, value string) (*accessDomain.Key, bool, error) {
	args := m.Called(ctx, username, value)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*accessDomain.Key), args.Bool(1), args.Error(2)
}
