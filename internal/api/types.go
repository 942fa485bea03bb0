package api

import (
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
)

// BMIRequest is the body of POST /api/v1/bmi.
type BMIRequest struct {
	Age           int                  `json:"age" binding:"omitempty,min=0"`
	WeightKg      float64              `json:"weight_kg"`
	HeightCm      float64              `json:"height_cm"`
	Gender        models.Gender        `json:"gender"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
}

// Profile converts the request into a profile.
func (r BMIRequest) Profile() models.UserProfile {
	return models.UserProfile{
		Age:           r.Age,
		WeightKg:      r.WeightKg,
		HeightCm:      r.HeightCm,
		Gender:        r.Gender,
		ActivityLevel: r.ActivityLevel,
	}
}

// BMIResponse is returned by POST /api/v1/bmi.
type BMIResponse struct {
	*service.Report
}

// PlanResponse is returned by POST /api/v1/plan on success.
type PlanResponse struct {
	*service.Plan
}

// OptionsResponse lists the vocabularies accepted by the form and the API.
type OptionsResponse struct {
	Genders        []models.Gender        `json:"genders"`
	ActivityLevels []models.ActivityLevel `json:"activity_levels"`
	Conditions     []models.Condition     `json:"conditions"`
	Allergies      []models.Allergy       `json:"allergies"`
	DietTypes      []models.DietType      `json:"diet_types"`
	MealTypes      []string               `json:"meal_types"`
}

// FormInput is the form-encoded body of POST /.
type FormInput struct {
	Age           int                  `form:"age"`
	WeightKg      float64              `form:"weight_kg"`
	HeightCm      float64              `form:"height_cm"`
	Gender        models.Gender        `form:"gender"`
	ActivityLevel models.ActivityLevel `form:"activity_level"`
	Conditions    []models.Condition   `form:"conditions"`
	Allergies     []models.Allergy     `form:"allergies"`
	DietType      models.DietType      `form:"diet_type"`
	MealType      string               `form:"meal_type"`
}

// Request converts the form into a plan request.
func (f FormInput) Request() *service.PlanRequest {
	return &service.PlanRequest{
		Profile: models.UserProfile{
			Age:           f.Age,
			WeightKg:      f.WeightKg,
			HeightCm:      f.HeightCm,
			Gender:        f.Gender,
			ActivityLevel: f.ActivityLevel,
		},
		Preferences: models.HealthPreferences{
			Conditions: f.Conditions,
			Allergies:  f.Allergies,
			DietType:   f.DietType,
			MealType:   f.MealType,
		},
	}
}
