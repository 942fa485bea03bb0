package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// MockRecipeFetcher is a mock implementation of service.RecipeFetcher
type MockRecipeFetcher struct {
	mock.Mock
}

// FetchRecipes mocks the FetchRecipes method
func (m *MockRecipeFetcher) FetchRecipes(ctx context.Context, q spoonacular.Query) ([]models.RecipeResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeResult), args.Error(1)
}
