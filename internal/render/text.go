package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
)

// WriteReportText writes a BMI report for a terminal.
func WriteReportText(w io.Writer, r *service.Report) error {
	return writeHealthReport(w, r.BmiResult, 0)
}

// WritePlanText writes a diet plan for a terminal. A failed plan prints its
// error in place of the recipe list.
func WritePlanText(w io.Writer, p *service.Plan) error {
	if p.Report != nil {
		if err := writeHealthReport(w, *p.Report, p.CalorieTarget); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if p.Err != nil || p.Error != "" {
		_, err := fmt.Fprintf(w, "Error: %s\n", p.Error)
		return err
	}

	fmt.Fprintln(w, "Diet Plan")
	if len(p.Recipes) == 0 {
		_, err := fmt.Fprintln(w, "  No recipes found for your preferences.")
		return err
	}
	for i, r := range p.Recipes {
		if err := writeRecipe(w, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeHealthReport(w io.Writer, r health.BmiResult, calorieTarget int) error {
	fmt.Fprintln(w, "Health Report")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  BMI:\t%.2f\n", r.BMI)
	fmt.Fprintf(tw, "  Status:\t%s\n", r.Status)
	if calorieTarget > 0 {
		fmt.Fprintf(tw, "  Calorie target:\t%d kcal\n", calorieTarget)
	}
	return tw.Flush()
}

func writeRecipe(w io.Writer, n int, r models.RecipeResult) error {
	fmt.Fprintf(w, "  %d. %s\n", n, r.Title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "     Calories:\t%s\n", r.Calories)
	if r.ImageURL != "" {
		fmt.Fprintf(tw, "     Image:\t%s\n", r.ImageURL)
	}
	if r.RecipeURL != "" {
		fmt.Fprintf(tw, "     Recipe:\t%s\n", r.RecipeURL)
	}
	if len(r.Ingredients) > 0 {
		fmt.Fprintf(tw, "     Ingredients:\t%s\n", strings.Join(r.Ingredients, ", "))
	}
	return tw.Flush()
}
