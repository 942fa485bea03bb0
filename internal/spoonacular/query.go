package spoonacular

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pageza/mealcraft/backend/internal/models"
)

// ResultLimit is the number of recipes requested per search.
const ResultLimit = 5

var healthTags = map[models.Condition]string{
	models.ConditionDiabetes:      "diabetic",
	models.ConditionHeartProblems: "heart-healthy",
	models.ConditionAsthma:        "asthma",
	models.ConditionHypertension:  "low-sodium",
	models.ConditionObesity:       "low-carb",
}

var intoleranceTags = map[models.Allergy][]string{
	models.AllergyLactose:   {"dairy"},
	models.AllergyGluten:    {"gluten"},
	models.AllergyNut:       {"peanut", "tree nut"},
	models.AllergyShellfish: {"shellfish"},
}

// An empty filter means no diet restriction is sent.
var dietFilters = map[models.DietType]string{
	models.DietVeg:    "vegetarian",
	models.DietNonVeg: "",
	models.DietBoth:   "",
}

// Query is the parameter set of one complexSearch request.
type Query struct {
	Diet               string   `json:"diet,omitempty" yaml:"diet,omitempty"`
	MaxCalories        int      `json:"max_calories" yaml:"max_calories"`
	Health             []string `json:"health" yaml:"health"`
	ExcludeIngredients []string `json:"exclude_ingredients" yaml:"exclude_ingredients"`
	Intolerances       []string `json:"intolerances,omitempty" yaml:"intolerances,omitempty"`
	Type               string   `json:"type,omitempty" yaml:"type,omitempty"`
	Number             int      `json:"number" yaml:"number"`
}

// HealthTag returns the search tag for a condition. Conditions without an
// equivalent in the API vocabulary, such as Cancer, report false.
func HealthTag(c models.Condition) (string, bool) {
	tag, ok := healthTags[c]
	return tag, ok
}

// DietFilter returns the diet parameter for a diet preference.
func DietFilter(d models.DietType) string {
	return dietFilters[d]
}

// BuildQuery maps validated preferences and a calorie target onto search
// parameters. Health tags keep the order in which conditions were selected.
// Allergies go through verbatim as ingredient exclusions and, when known,
// are also sent as intolerances.
func BuildQuery(prefs models.HealthPreferences, calorieTarget int) Query {
	q := Query{
		Diet:               DietFilter(prefs.DietType),
		MaxCalories:        calorieTarget,
		Health:             []string{},
		ExcludeIngredients: []string{},
		Type:               prefs.MealType,
		Number:             ResultLimit,
	}

	for _, c := range prefs.Conditions {
		if tag, ok := HealthTag(c); ok {
			q.Health = append(q.Health, tag)
		}
	}

	seen := make(map[string]bool)
	for _, a := range prefs.Allergies {
		q.ExcludeIngredients = append(q.ExcludeIngredients, string(a))

		canon, ok := models.ParseAllergy(string(a))
		if !ok {
			continue
		}
		for _, tag := range intoleranceTags[canon] {
			if !seen[tag] {
				seen[tag] = true
				q.Intolerances = append(q.Intolerances, tag)
			}
		}
	}

	return q
}

// Values encodes the query for the wire. The API key is added here so it
// never sits in a Query that may be logged or rendered.
func (q Query) Values(apiKey string) url.Values {
	v := url.Values{}
	v.Set("apiKey", apiKey)
	if q.Diet != "" {
		v.Set("diet", q.Diet)
	}
	v.Set("maxCalories", strconv.Itoa(q.MaxCalories))
	v.Set("health", strings.Join(q.Health, ","))
	v.Set("excludeIngredients", strings.Join(q.ExcludeIngredients, ","))
	if len(q.Intolerances) > 0 {
		v.Set("intolerances", strings.Join(q.Intolerances, ","))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	v.Set("number", strconv.Itoa(q.Number))
	v.Set("addRecipeNutrition", "true")
	return v
}

// MealTypes lists the dish types accepted by the type filter.
func MealTypes() []string {
	return []string{
		"main course", "side dish", "dessert", "appetizer", "salad", "bread",
		"breakfast", "soup", "beverage", "sauce", "marinade", "fingerfood",
		"snack", "drink",
	}
}
