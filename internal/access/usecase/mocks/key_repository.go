// Package mocks provides mock implementations for access use case testing.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
)

// MockKeyRepository is a mock implementation of KeyRepository for testing.
type MockKeyRepository struct {
	mock.Mock
}

// Create mocks the Create method of KeyRepository.
func (m *MockKeyRepository) Create(ctx context.Context, key *accessDomain.Key) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// GetByID mocks the GetByID method of KeyRepository.
func (m *MockKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*accessDomain.Key, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}

// GetByUsername mocks the GetByUsername method of KeyRepository.
func (m *MockKeyRepository) GetByUsername(ctx context.Context, username string) (*accessDomain.Key, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}

// GetByValue mocks the GetByValue method of KeyRepository.
func (m *MockKeyRepository) GetByValue(ctx context.Context, value string) (*accessDomain.Key, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Key), args.Error(1)
}

// List mocks the List method of KeyRepository.
func (m *MockKeyRepository) List(ctx context.Context) ([]*accessDomain.Key, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accessDomain.Key), args.Error(1)
}

// Count mocks the Count method of KeyRepository.
func (m *MockKeyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// UpdateValue mocks the UpdateValue method of KeyRepository.
func (m *MockKeyRepository) UpdateValue(ctx context.Context, id uuid.UUID, value string, updatedAt time.Time) error {
	args := m.Called(ctx, id, value, updatedAt)
	return args.Error(0)
}

// Delete mocks the Delete method of KeyRepository.
func (m *MockKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
