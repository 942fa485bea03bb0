package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabelsIgnoreCaseAndSpacing(t *testing.T) {
	g, ok := ParseGender("  female ")
	assert.True(t, ok)
	assert.Equal(t, GenderFemale, g)

	a, ok := ParseActivityLevel("moderately   ACTIVE")
	assert.True(t, ok)
	assert.Equal(t, ActivityModeratelyActive, a)

	c, ok := ParseCondition("heart problems")
	assert.True(t, ok)
	assert.Equal(t, ConditionHeartProblems, c)

	al, ok := ParseAllergy("lactose")
	assert.True(t, ok)
	assert.Equal(t, AllergyLactose, al)

	_, ok = ParseGender("robot")
	assert.False(t, ok)
}

func TestParseDietTypeAcceptsEveryVariantLabel(t *testing.T) {
	cases := map[string]DietType{
		"Veg":            DietVeg,
		"Vegetarian":     DietVeg,
		"Non-Veg":        DietNonVeg,
		"Non-Vegetarian": DietNonVeg,
		"Both":           DietBoth,
		"any":            DietBoth,
	}
	for label, want := range cases {
		got, ok := ParseDietType(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestUserProfileValidate(t *testing.T) {
	t.Run("canonicalizes enums", func(t *testing.T) {
		p, err := UserProfile{Age: 30, WeightKg: 70, HeightCm: 175, Gender: "male", ActivityLevel: "very active"}.Validate()
		require.NoError(t, err)
		assert.Equal(t, GenderMale, p.Gender)
		assert.Equal(t, ActivityVeryActive, p.ActivityLevel)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		_, err := UserProfile{WeightKg: 0, HeightCm: 175}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "weight_kg", verr.Field)
	})

	t.Run("rejects non-positive height", func(t *testing.T) {
		_, err := UserProfile{WeightKg: 70, HeightCm: -1}.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "height_cm", verr.Field)
	})

	t.Run("rejects non-finite weight and height", func(t *testing.T) {
		cases := []struct {
			profile UserProfile
			field   string
		}{
			{UserProfile{WeightKg: math.NaN(), HeightCm: 175}, "weight_kg"},
			{UserProfile{WeightKg: math.Inf(1), HeightCm: 175}, "weight_kg"},
			{UserProfile{WeightKg: math.Inf(-1), HeightCm: 175}, "weight_kg"},
			{UserProfile{WeightKg: 70, HeightCm: math.NaN()}, "height_cm"},
			{UserProfile{WeightKg: 70, HeightCm: math.Inf(1)}, "height_cm"},
		}
		for _, tc := range cases {
			_, err := tc.profile.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "%+v", tc.profile)
			assert.Equal(t, tc.field, verr.Field)
		}
	})

	t.Run("rejects short height", func(t *testing.T) {
		_, err := UserProfile{WeightKg: 70, HeightCm: 40}.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects age out of range", func(t *testing.T) {
		_, err := UserProfile{Age: 121, WeightKg: 70, HeightCm: 175}.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "age", verr.Field)
	})

	t.Run("rejects unknown gender", func(t *testing.T) {
		_, err := UserProfile{WeightKg: 70, HeightCm: 175, Gender: "robot"}.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestHealthPreferencesValidate(t *testing.T) {
	p, err := HealthPreferences{
		Conditions: []Condition{"diabetes", " ", "Cancer", "Flu"},
		Allergies:  []Allergy{"Nut Allergy", ""},
	}.Validate()
	require.NoError(t, err)

	assert.Equal(t, []Condition{ConditionDiabetes, ConditionCancer, "Flu"}, p.Conditions)
	assert.Equal(t, []Allergy{AllergyNut}, p.Allergies)
	assert.Equal(t, DietBoth, p.DietType)

	_, err = HealthPreferences{DietType: "carnivore"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
