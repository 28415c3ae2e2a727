package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/keypanel/keypanel/internal/access/domain"
	settingsDomain "github.com/keypanel/keypanel/internal/settings/domain"
)

// MockSettingsUseCase is a mock implementation of usecase.SettingsUseCase.
type MockSettingsUseCase struct {
	mock.Mock
}

func (m *MockSettingsUseCase) Get(ctx context.Context, actor *accessDomain.Key) (*settingsDomain.Settings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Settings), args.Error(1)
}

func (m *MockSettingsUseCase) Update(
	ctx context.Context,
	actor *accessDomain.Key,
	input *settingsDomain.UpdateSettingsInput,
) (*settingsDomain.Settings, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Settings), args.Error(1)
}

func (m *MockSettingsUseCase) Current(ctx context.Context) (*settingsDomain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Settings), args.Error(1)
}
