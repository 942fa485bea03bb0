package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/metrics"
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// Report is the health report for a validated profile.
type Report struct {
	health.BmiResult `yaml:",inline"`

	Profile models.UserProfile `json:"profile" yaml:"profile"`
}

// PlanRequest is one form submission.
type PlanRequest struct {
	Profile     models.UserProfile       `json:"profile" yaml:"profile"`
	Preferences models.HealthPreferences `json:"preferences" yaml:"preferences"`
}

// Plan is the outcome of one submission. Err is set when the submission
// failed; Report is nil when the failure happened during validation.
type Plan struct {
	Profile       models.UserProfile       `json:"profile" yaml:"profile"`
	Preferences   models.HealthPreferences `json:"preferences" yaml:"preferences"`
	Report        *health.BmiResult        `json:"report,omitempty" yaml:"report,omitempty"`
	CalorieTarget int                      `json:"calorie_target,omitempty" yaml:"calorie_target,omitempty"`
	Recipes       []models.RecipeResult    `json:"recipes" yaml:"recipes"`
	Error         string                   `json:"error,omitempty" yaml:"error,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// PlanService computes health reports and diet plans.
type PlanService struct {
	recipes     RecipeFetcher
	bands       health.Bands
	calorieMode health.CalorieMode
}

// NewPlanService creates a PlanService backed by recipes.
func NewPlanService(recipes RecipeFetcher, bands health.Bands, calorieMode health.CalorieMode) *PlanService {
	return &PlanService{
		recipes:     recipes,
		bands:       bands,
		calorieMode: calorieMode,
	}
}

// Evaluate validates profile and computes its BMI report. No recipe search
// is made.
func (s *PlanService) Evaluate(profile models.UserProfile) (*Report, error) {
	p, err := profile.Validate()
	if err != nil {
		return nil, err
	}
	result, err := health.Evaluate(p, s.bands)
	if err != nil {
		return nil, err
	}
	metrics.RecordBMIStatus(string(result.Status))
	return &Report{Profile: p, BmiResult: result}, nil
}

// Plan runs a full submission: validation, BMI, calorie target and one
// recipe search. It never returns nil. Any failure is folded into the
// returned Plan as a single error with no recipes.
func (s *PlanService) Plan(ctx context.Context, req *PlanRequest) *Plan {
	if req == nil {
		req = &PlanRequest{}
	}
	plan := &Plan{
		Profile:     req.Profile,
		Preferences: req.Preferences,
		Recipes:     []models.RecipeResult{},
	}

	report, err := s.Evaluate(req.Profile)
	if err != nil {
		return s.fail(plan, metrics.OutcomeInvalidInput, err)
	}
	plan.Profile = report.Profile
	plan.Report = &report.BmiResult

	prefs, err := req.Preferences.Validate()
	if err != nil {
		return s.fail(plan, metrics.OutcomeInvalidInput, err)
	}
	plan.Preferences = prefs

	target, err := health.CalorieTarget(s.calorieMode, plan.Profile, report.BMI)
	if err != nil {
		return s.fail(plan, metrics.OutcomeInvalidInput, err)
	}
	plan.CalorieTarget = target

	recipes, err := s.recipes.FetchRecipes(ctx, spoonacular.BuildQuery(prefs, target))
	if err != nil {
		outcome := metrics.OutcomeTransportFailed
		var apiErr *spoonacular.APIError
		if errors.As(err, &apiErr) {
			outcome = metrics.OutcomeUpstreamError
		}
		slog.Warn("recipe search failed", "error", err)
		return s.fail(plan, outcome, err)
	}

	if len(recipes) == 0 {
		metrics.RecordPlanOutcome(metrics.OutcomeEmpty)
	} else {
		plan.Recipes = recipes
		metrics.RecordPlanOutcome(metrics.OutcomeOK)
	}

	slog.Info("plan generated",
		"status", report.Status,
		"calorie_target", target,
		"recipes", len(plan.Recipes))
	return plan
}

func (s *PlanService) fail(plan *Plan, outcome string, err error) *Plan {
	metrics.RecordPlanOutcome(outcome)
	plan.Err = err
	plan.Error = err.Error()
	plan.Recipes = []models.RecipeResult{}
	return plan
}
