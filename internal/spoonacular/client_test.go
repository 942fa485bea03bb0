package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealcraft/backend/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestFetchRecipes(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"id": 715415,
					"title": "Red Lentil Soup",
					"image": "https://img.spoonacular.com/715415.jpg",
					"nutrition": {"nutrients": [{"name": "Calories", "amount": 477.8, "unit": "kcal"}]},
					"usedIngredients": [{"name": "lentils"}, {"name": "carrot"}]
				}
			],
			"totalResults": 1
		}`))
	})

	prefs := models.HealthPreferences{
		Conditions: []models.Condition{models.ConditionDiabetes},
		DietType:   models.DietVeg,
	}
	recipes, err := client.FetchRecipes(context.Background(), BuildQuery(prefs, 2000))
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/recipes/complexSearch", got.URL.Path)
	assert.Equal(t, "test-key", got.URL.Query().Get("apiKey"))
	assert.Equal(t, "diabetic", got.URL.Query().Get("health"))
	assert.Equal(t, "vegetarian", got.URL.Query().Get("diet"))
	assert.Equal(t, "2000", got.URL.Query().Get("maxCalories"))
	assert.Equal(t, "5", got.URL.Query().Get("number"))

	r := recipes[0]
	assert.Equal(t, 715415, r.ID)
	assert.Equal(t, "Red Lentil Soup", r.Title)
	assert.Equal(t, "477.8", r.Calories)
	assert.Equal(t, "https://img.spoonacular.com/715415.jpg", r.ImageURL)
	assert.Equal(t, "https://spoonacular.com/recipes/red-lentil-soup-715415", r.RecipeURL)
	assert.Equal(t, []string{"lentils", "carrot"}, r.Ingredients)
}

func TestFetchRecipesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"status":"failure","message":"daily quota used up"}`))
	})

	recipes, err := client.FetchRecipes(context.Background(), BuildQuery(models.HealthPreferences{}, 2000))
	require.Error(t, err)
	assert.Empty(t, recipes)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, `{"status":"failure","message":"daily quota used up"}`, apiErr.Body)
	assert.Equal(t, `API Error: 402 - {"status":"failure","message":"daily quota used up"}`, err.Error())
}

func TestFetchRecipesEmptyResults(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":      `{"results": []}`,
		"missing results": `{}`,
		"null results":    `{"results": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			recipes, err := client.FetchRecipes(context.Background(), BuildQuery(models.HealthPreferences{}, 2000))
			require.NoError(t, err)
			assert.NotNil(t, recipes)
			assert.Empty(t, recipes)
		})
	}
}

func TestFetchRecipesPlaceholders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [
			{"id": 1},
			{"title": "No Id", "nutrition": {"nutrients": []}},
			{"id": 3, "title": "Odd Fields", "nutrition": "lots", "usedIngredients": [{"name": 7}, {"name": "salt"}]},
			{"id": 4, "title": 42, "nutrition": {"nutrients": [{"amount": "high"}]}},
			null,
			"not an object"
		]}`))
	})

	recipes, err := client.FetchRecipes(context.Background(), BuildQuery(models.HealthPreferences{}, 2000))
	require.NoError(t, err)
	require.Len(t, recipes, 6)

	assert.Equal(t, models.NotAvailable, recipes[0].Title)
	assert.Equal(t, models.NotAvailable, recipes[0].Calories)
	assert.Equal(t, "https://spoonacular.com/recipes/1", recipes[0].RecipeURL)
	assert.Empty(t, recipes[0].ImageURL)

	assert.Equal(t, "No Id", recipes[1].Title)
	assert.Equal(t, models.NotAvailable, recipes[1].Calories)
	assert.Empty(t, recipes[1].RecipeURL)

	assert.Equal(t, models.NotAvailable, recipes[2].Calories)
	assert.Equal(t, []string{"salt"}, recipes[2].Ingredients)

	assert.Equal(t, models.NotAvailable, recipes[3].Title)
	assert.Equal(t, models.NotAvailable, recipes[3].Calories)

	for _, r := range recipes[4:] {
		assert.Equal(t, models.NotAvailable, r.Title)
		assert.Equal(t, models.NotAvailable, r.Calories)
	}
}

func TestFetchRecipesMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":         `<html>oops</html>`,
		"results not list": `{"results": "none"}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			recipes, err := client.FetchRecipes(context.Background(), BuildQuery(models.HealthPreferences{}, 2000))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedResponse))
			assert.Nil(t, recipes)
		})
	}
}

func TestFetchRecipesCanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchRecipes(ctx, BuildQuery(models.HealthPreferences{}, 2000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotContains(t, err.Error(), "test-key")
}

func TestFetchRecipesUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient("test-key", WithBaseURL(srv.URL))

	recipes, err := client.FetchRecipes(context.Background(), BuildQuery(models.HealthPreferences{}, 2000))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, recipes)
	assert.NotContains(t, err.Error(), "test-key")

	_, isAPIErr := IsAPIError(err)
	assert.False(t, isAPIErr)
}

func TestRecipeLink(t *testing.T) {
	assert.Equal(t, "https://spoonacular.com/recipes/greek-salad-12", recipeLink("Greek  Salad", 12))
	assert.Equal(t, "https://spoonacular.com/recipes/12", recipeLink(models.NotAvailable, 12))
}
