package models

import (
	"math"
	"strings"
)

// Gender is collected on the form and only consumed by the calorie estimator.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ActivityLevel selects the multiplier applied to the basal metabolic rate.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtraActive      ActivityLevel = "Extra Active"
)

const (
	MinAge      = 1
	MaxAge      = 120
	MinHeightCm = 50.0
)

var genders = foldedTable(map[Gender][]string{
	GenderMale:   {"Male", "M", "Man"},
	GenderFemale: {"Female", "F", "Woman"},
	GenderOther:  {"Other"},
})

var activityLevels = foldedTable(map[ActivityLevel][]string{
	ActivitySedentary:        {"Sedentary", "sedentary"},
	ActivityLightlyActive:    {"Lightly Active", "light", "lightly_active"},
	ActivityModeratelyActive: {"Moderately Active", "moderate", "moderately_active"},
	ActivityVeryActive:       {"Very Active", "active", "very_active"},
	ActivityExtraActive:      {"Extra Active", "extra", "extra_active"},
})

// Genders lists the accepted genders in form order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// ActivityLevels lists the accepted activity levels in form order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityVeryActive,
		ActivityExtraActive,
	}
}

// ParseGender resolves a label to its canonical Gender.
func ParseGender(s string) (Gender, bool) {
	return lookup(genders, s)
}

// ParseActivityLevel resolves a label to its canonical ActivityLevel.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	return lookup(activityLevels, s)
}

// UserProfile holds the body metrics submitted with the form.
type UserProfile struct {
	Age           int           `json:"age" form:"age" yaml:"age"`
	WeightKg      float64       `json:"weight_kg" form:"weight_kg" yaml:"weight_kg"`
	HeightCm      float64       `json:"height_cm" form:"height_cm" yaml:"height_cm"`
	Gender        Gender        `json:"gender,omitempty" form:"gender" yaml:"gender,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty" form:"activity_level" yaml:"activity_level,omitempty"`
}

// PositiveFinite reports whether v is a real number above zero. NaN fails
// every comparison, so it is rejected along with the infinities.
func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks the profile and returns a copy with canonical enum labels.
// Weight and height are checked first since they gate the BMI calculation.
// Age is only checked when supplied; gender and activity level may be empty.
func (p UserProfile) Validate() (UserProfile, error) {
	if !PositiveFinite(p.WeightKg) {
		return p, NewValidationError("weight_kg", "must be a finite number greater than 0")
	}
	if !PositiveFinite(p.HeightCm) {
		return p, NewValidationError("height_cm", "must be a finite number greater than 0")
	}
	if p.HeightCm < MinHeightCm {
		return p, NewValidationError("height_cm", "must be at least %g", MinHeightCm)
	}
	if p.Age != 0 && (p.Age < MinAge || p.Age > MaxAge) {
		return p, NewValidationError("age", "must be between %d and %d", MinAge, MaxAge)
	}

	if strings.TrimSpace(string(p.Gender)) != "" {
		g, ok := ParseGender(string(p.Gender))
		if !ok {
			return p, NewValidationError("gender", "unknown gender %q", p.Gender)
		}
		p.Gender = g
	}
	if strings.TrimSpace(string(p.ActivityLevel)) != "" {
		a, ok := ParseActivityLevel(string(p.ActivityLevel))
		if !ok {
			return p, NewValidationError("activity_level", "unknown activity level %q", p.ActivityLevel)
		}
		p.ActivityLevel = a
	}
	return p, nil
}
