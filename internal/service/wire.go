package service

import (
	"net/http"

	"github.com/pageza/mealcraft/backend/config"
	"github.com/pageza/mealcraft/backend/internal/metrics"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// NewPlanServiceFromConfig builds a PlanService backed by an instrumented
// Spoonacular client. The client has no timeout; request contexts bound
// each call.
func NewPlanServiceFromConfig(cfg *config.Config) *PlanService {
	hc := &http.Client{Transport: metrics.InstrumentTransport(http.DefaultTransport)}
	client := spoonacular.NewClient(cfg.SpoonacularAPIKey,
		spoonacular.WithBaseURL(cfg.SpoonacularBaseURL),
		spoonacular.WithHTTPClient(hc))
	return NewPlanService(client, cfg.BMIBands, cfg.CalorieMode)
}
