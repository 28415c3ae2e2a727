// Package mocks provides mock implementations for access service testing.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSecretService is a mock implementation of SecretService for testing.
type MockSecretService struct {
	mock.Mock
}

// GenerateValue mocks the GenerateValue method of SecretService.
func (m *MockSecretService) GenerateValue() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Compare mocks the Compare method of SecretService.
func (m *MockSecretService) Compare(a, b string) bool {
	args := m.Called(a, b)
	return args.Bool(0)
}
