package handlers

import (
	"context"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/stretchr/testify/mock"
)

// MockContactService implements ContactSubmitter for handler tests.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req types.ContactRequest) (*types.ContactSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContactSubmission), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	args := m.Called(ctx)
	return args.Get(0).(types.HealthCheck)
}
