package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method of AuthUseCase.
func (m *MockAuthUseCase) Authenticate(ctx context.Context, username, secret string) (*accessDomain.Key, error) {
	args := m.Called(ctx, username, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}
