package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

func samplePlan() *service.Plan {
	return &service.Plan{
		Report:        &health.BmiResult{BMI: 22.86, Status: health.StatusHealthy},
		CalorieTarget: 2000,
		Recipes: []models.RecipeResult{{
			ID:          715415,
			Title:       "Red Lentil Soup",
			Calories:    "477.8",
			RecipeURL:   "https://spoonacular.com/recipes/red-lentil-soup-715415",
			Ingredients: []string{"lentils", "carrot"},
		}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("table")
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Write(samplePlan()))

	var got service.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2000, got.CalorieTarget)
	assert.Equal(t, "Red Lentil Soup", got.Recipes[0].Title)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Write(&service.Report{
		BmiResult: health.BmiResult{BMI: 22.86, Status: health.StatusHealthy},
	}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 22.86, got["bmi"])
	assert.Equal(t, "Healthy", got["status"])
}

func TestWriteTextPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatText, &buf).Write(samplePlan()))

	out := buf.String()
	assert.Contains(t, out, "Health Report")
	assert.Contains(t, out, "22.86")
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "2000 kcal")
	assert.Contains(t, out, "1. Red Lentil Soup")
	assert.Contains(t, out, "lentils, carrot")
}

func TestWriteTextPlanError(t *testing.T) {
	apiErr := &spoonacular.APIError{StatusCode: 401, Body: "bad key"}
	plan := &service.Plan{
		Report: &health.BmiResult{BMI: 22.86, Status: health.StatusHealthy},
		Err:    apiErr,
		Error:  apiErr.Error(),
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatText, &buf).Write(plan))

	out := buf.String()
	assert.Contains(t, out, "Error: API Error: 401 - bad key")
	assert.NotContains(t, out, "Diet Plan")
}

func TestWriteTextNoRecipes(t *testing.T) {
	plan := samplePlan()
	plan.Recipes = []models.RecipeResult{}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatText, &buf).Write(plan))
	assert.Contains(t, buf.String(), "No recipes found")
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")

	w, err := NewFileWriter(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, w.Write(samplePlan()))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Red Lentil Soup")
}

func TestNewFileWriterBadPath(t *testing.T) {
	_, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "plan.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
