package spoonacular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pageza/mealcraft/backend/internal/models"
)

const recipeLinkBase = "https://spoonacular.com/recipes/"

type searchResponse struct {
	Results json.RawMessage `json:"results"`
}

// rawRecipe keeps every field undecoded so one malformed field cannot fail
// the whole item.
type rawRecipe struct {
	ID              json.RawMessage `json:"id"`
	Title           json.RawMessage `json:"title"`
	Image           json.RawMessage `json:"image"`
	Nutrition       json.RawMessage `json:"nutrition"`
	UsedIngredients json.RawMessage `json:"usedIngredients"`
}

func parseSearchResponse(body []byte) ([]models.RecipeResult, error) {
	var doc searchResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if isNull(doc.Results) {
		return []models.RecipeResult{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(doc.Results, &items); err != nil {
		return nil, fmt.Errorf("%w: results is not a list", ErrMalformedResponse)
	}

	recipes := make([]models.RecipeResult, 0, len(items))
	for _, item := range items {
		recipes = append(recipes, parseRecipe(item))
	}
	return recipes, nil
}

func parseRecipe(item json.RawMessage) models.RecipeResult {
	out := models.RecipeResult{
		Title:    models.NotAvailable,
		Calories: models.NotAvailable,
	}

	var raw rawRecipe
	if err := json.Unmarshal(item, &raw); err != nil {
		return out
	}

	if title, ok := stringField(raw.Title); ok {
		out.Title = title
	}
	if image, ok := stringField(raw.Image); ok {
		out.ImageURL = image
	}
	if calories, ok := firstNutrientAmount(raw.Nutrition); ok {
		out.Calories = calories
	}
	out.Ingredients = ingredientNames(raw.UsedIngredients)

	if id, ok := intField(raw.ID); ok {
		out.ID = id
		out.RecipeURL = recipeLink(out.Title, id)
	}
	return out
}

func recipeLink(title string, id int) string {
	if title == models.NotAvailable {
		return recipeLinkBase + strconv.Itoa(id)
	}
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	return recipeLinkBase + url.PathEscape(slug) + "-" + strconv.Itoa(id)
}

func firstNutrientAmount(raw json.RawMessage) (string, bool) {
	var nutrition struct {
		Nutrients []json.RawMessage `json:"nutrients"`
	}
	if err := json.Unmarshal(raw, &nutrition); err != nil || len(nutrition.Nutrients) == 0 {
		return "", false
	}

	var nutrient struct {
		Amount *float64 `json:"amount"`
	}
	if err := json.Unmarshal(nutrition.Nutrients[0], &nutrient); err != nil || nutrient.Amount == nil {
		return "", false
	}
	return strconv.FormatFloat(*nutrient.Amount, 'f', -1, 64), true
}

func ingredientNames(raw json.RawMessage) []string {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		var ing struct {
			Name json.RawMessage `json:"name"`
		}
		if err := json.Unmarshal(entry, &ing); err != nil {
			continue
		}
		if name, ok := stringField(ing.Name); ok {
			names = append(names, name)
		}
	}
	return names
}

func stringField(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func intField(raw json.RawMessage) (int, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	return 0, false
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
