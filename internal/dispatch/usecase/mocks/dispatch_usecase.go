// Package mocks provides test doubles for the dispatch use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dispatchDomain "github.com/keypanel/keypanel/internal/dispatch/domain"
)

// MockDispatchUseCase is a mock implementation of usecase.DispatchUseCase.
type MockDispatchUseCase struct {
	mock.Mock
}

func (m *MockDispatchUseCase) Dispatch(
	ctx context.Context,
	input *dispatchDomain.DispatchInput,
) (*dispatchDomain.Dispatch, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatchDomain.Dispatch), args.Error(1)
}
