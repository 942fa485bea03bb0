package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealcraft/backend/internal/models"
)

func TestCalorieTargetFixed(t *testing.T) {
	got, err := CalorieTarget(CalorieModeFixed, models.UserProfile{}, 40)
	require.NoError(t, err)
	assert.Equal(t, DefaultCalorieTarget, got)
}

func TestCalorieTargetEstimated(t *testing.T) {
	t.Run("healthy male keeps maintenance calories", func(t *testing.T) {
		p := models.UserProfile{Age: 25, WeightKg: 70, HeightCm: 170, Gender: models.GenderMale, ActivityLevel: models.ActivityModeratelyActive}
		got, err := CalorieTarget(CalorieModeEstimated, p, 24.22)
		require.NoError(t, err)
		assert.Equal(t, 2635, got)
	})

	t.Run("overweight female gets a deficit", func(t *testing.T) {
		p := models.UserProfile{Age: 40, WeightKg: 90, HeightCm: 160, Gender: models.GenderFemale, ActivityLevel: models.ActivitySedentary}
		got, err := CalorieTarget(CalorieModeEstimated, p, 35.16)
		require.NoError(t, err)
		assert.Equal(t, 1634, got)
	})

	t.Run("underweight gets a surplus", func(t *testing.T) {
		p := models.UserProfile{Age: 30, WeightKg: 45, HeightCm: 170, Gender: models.GenderOther, ActivityLevel: models.ActivityLightlyActive}
		got, err := CalorieTarget(CalorieModeEstimated, p, 15.57)
		require.NoError(t, err)
		assert.Equal(t, 1993, got)
	})

	t.Run("requires activity level", func(t *testing.T) {
		_, err := CalorieTarget(CalorieModeEstimated, models.UserProfile{Age: 30, WeightKg: 70, HeightCm: 175}, 22)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("requires age", func(t *testing.T) {
		p := models.UserProfile{WeightKg: 70, HeightCm: 175, ActivityLevel: models.ActivitySedentary}
		_, err := CalorieTarget(CalorieModeEstimated, p, 22)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestParseCalorieMode(t *testing.T) {
	m, err := ParseCalorieMode("")
	require.NoError(t, err)
	assert.Equal(t, CalorieModeFixed, m)

	m, err = ParseCalorieMode("estimated")
	require.NoError(t, err)
	assert.Equal(t, CalorieModeEstimated, m)

	_, err = ParseCalorieMode("magic")
	assert.Error(t, err)
}
