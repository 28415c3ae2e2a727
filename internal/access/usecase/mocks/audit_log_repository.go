package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// MockAuditLogRepository is a mock implementation of AuditLogRepository for testing.
type MockAuditLogRepository struct {
	mock.Mock
}

// Create mocks the Create method of AuditLogRepository.
func (m *MockAuditLogRepository) Create(ctx context.Context, entry *accessDomain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// List mocks the List method of AuditLogRepository.
func (m *MockAuditLogRepository) List(ctx context.Context) ([]*accessDomain.AuditLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.AuditLog), args.Error(1)
}

// DeleteAll mocks the DeleteAll method of AuditLogRepository.
func (m *MockAuditLogRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
