package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
)

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

// Evaluate mocks the Evaluate method
func (m *MockPlanService) Evaluate(profile models.UserProfile) (*service.Report, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Report), args.Error(1)
}

// Plan mocks the Plan method
func (m *MockPlanService) Plan(ctx context.Context, req *service.PlanRequest) *service.Plan {
	args := m.Called(ctx, req)
	return args.Get(0).(*service.Plan)
}
