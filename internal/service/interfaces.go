package service

import (
	"context"

	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// RecipeFetcher runs one recipe search.
type RecipeFetcher interface {
	FetchRecipes(ctx context.Context, q spoonacular.Query) ([]models.RecipeResult, error)
}

// IPlanService defines the operations offered to the inbound surfaces.
type IPlanService interface {
	Evaluate(profile models.UserProfile) (*Report, error)
	Plan(ctx context.Context, req *PlanRequest) *Plan
}
