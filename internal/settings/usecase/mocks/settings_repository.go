// Package mocks provides test doubles for the settings use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// MockSettingsRepository is a mock implementation of usecase.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*settingsDomain.StoredSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.StoredSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, stored *settingsDomain.StoredSettings) error {
	args := m.Called(ctx, stored)
	return args.Error(0)
}
