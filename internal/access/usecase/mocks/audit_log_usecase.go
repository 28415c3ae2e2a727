package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// MockAuditLogUseCase is a mock implementation of AuditLogUseCase for testing.
type MockAuditLogUseCase struct {
	mock.Mock
}

// Record mocks the Record method of AuditLogUseCase.
func (m *MockAuditLogUseCase) Record(
	ctx context.Context,
	actor *accessDomain.Key,
	action accessDomain.AuditAction,
	target *accessDomain.Key,
) (*accessDomain.AuditLog, error) {
	args := m.Called(ctx, actor, action, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.AuditLog), args.Error(1)
}

// List mocks the List method of AuditLogUseCase.
func (m *MockAuditLogUseCase) List(ctx context.Context) ([]*accessDomain.AuditLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.AuditLog), args.Error(1)
}

// Clear mocks the Clear method of AuditLogUseCase.
func (m *MockAuditLogUseCase) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
