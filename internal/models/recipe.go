package models

// Placeholder shown for recipe fields the search API left out.
const NotAvailable = "N/A"

// RecipeResult is one display-ready entry of a diet plan.
type RecipeResult struct {
	ID          int      `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Calories    string   `json:"calories" yaml:"calories"`
	ImageURL    string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	RecipeURL   string   `json:"recipe_url,omitempty" yaml:"recipe_url,omitempty"`
	Ingredients []string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}
