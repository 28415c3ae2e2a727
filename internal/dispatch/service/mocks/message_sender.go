// Package mocks provides test doubles for the dispatch service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMessageSender is a mock implementation of service.MessageSender.
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	args := m.Called(ctx, botToken, chatID, text)
	return args.Error(0)
}
