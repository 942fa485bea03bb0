package health

import (
	"fmt"
	"math"

	"github.com/pageza/mealcraft/backend/internal/models"
)

// DefaultCalorieTarget is the daily budget used when no estimate is made.
const DefaultCalorieTarget = 2000

// CalorieMode selects how the daily calorie target is derived.
type CalorieMode string

const (
	CalorieModeFixed     CalorieMode = "fixed"
	CalorieModeEstimated CalorieMode = "estimated"
)

// ParseCalorieMode resolves a configuration value. Empty means fixed.
func ParseCalorieMode(s string) (CalorieMode, error) {
	switch CalorieMode(s) {
	case "", CalorieModeFixed:
		return CalorieModeFixed, nil
	case CalorieModeEstimated:
		return CalorieModeEstimated, nil
	default:
		return "", fmt.Errorf("unknown calorie mode %q (want %q or %q)", s, CalorieModeFixed, CalorieModeEstimated)
	}
}

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtraActive:      1.9,
}

// CalorieTarget returns the daily calorie budget for profile.
//
// In estimated mode the Harris-Benedict BMR is scaled by the activity
// multiplier, then reduced by 15% above a BMI of 25 or raised by 15% below
// 18.5. The profile must carry an age and a known activity level.
func CalorieTarget(mode CalorieMode, profile models.UserProfile, bmi float64) (int, error) {
	if mode != CalorieModeEstimated {
		return DefaultCalorieTarget, nil
	}
	if profile.Age < models.MinAge || profile.Age > models.MaxAge {
		return 0, models.NewValidationError("age", "is required to estimate a calorie target")
	}
	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		return 0, models.NewValidationError("activity_level", "is required to estimate a calorie target")
	}

	calories := BMR(profile) * mult
	switch {
	case bmi > 25:
		calories *= 0.85
	case bmi < 18.5:
		calories *= 1.15
	}
	return int(math.Round(calories)), nil
}

// BMR is the revised Harris-Benedict basal metabolic rate in kcal/day.
// Anything other than Male uses the female coefficients.
func BMR(p models.UserProfile) float64 {
	age := float64(p.Age)
	if p.Gender == models.GenderMale {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*age
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*age
}
