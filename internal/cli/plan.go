package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
)

func planCmd() *cli.Command {
	flags := append(profileFlags(),
		&cli.StringSliceFlag{
			Name:  "condition",
			Usage: fmt.Sprintf("Medical condition, repeatable (supported values: %v)", models.Conditions()),
		},
		&cli.StringSliceFlag{
			Name:  "allergy",
			Usage: "Allergy or ingredient to exclude, repeatable",
		},
		&cli.StringFlag{
			Name:  "diet",
			Value: string(models.DietBoth),
			Usage: fmt.Sprintf("Diet preference (supported values: %v)", models.DietTypes()),
		},
		&cli.StringFlag{
			Name:  "meal-type",
			Usage: "Restrict results to one dish type (e.g. breakfast)",
		},
		&cli.StringFlag{
			Name:  "bands",
			Usage: "BMI thresholds; overrides BMI_BANDS",
		},
		&cli.StringFlag{
			Name:  "calorie-mode",
			Usage: fmt.Sprintf("Calorie target (%s or %s); overrides CALORIE_MODE", health.CalorieModeFixed, health.CalorieModeEstimated),
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:  "plan",
		Usage: "Generate a health report and diet plan",
		Description: `Computes the health report, then searches Spoonacular for up to five
recipes matching the given conditions, allergies and diet.

Requires SPOONACULAR_API_KEY (or SPOONACULAR_API_KEY_FILE).`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if v := cmd.String("bands"); v != "" {
				if cfg.BMIBands, err = health.ParseBands(v); err != nil {
					return err
				}
			}
			if v := cmd.String("calorie-mode"); v != "" {
				if cfg.CalorieMode, err = health.ParseCalorieMode(v); err != nil {
					return err
				}
			}

			out, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(out)

			plan := newPlanner(cfg).Plan(ctx, &service.PlanRequest{
				Profile:     profileFromCmd(cmd),
				Preferences: preferencesFromCmd(cmd),
			})
			if err := out.Write(plan); err != nil {
				if plan.Err != nil {
					return plan.Err
				}
				return err
			}
			if plan.Err != nil {
				// Nothing reaches the terminal when the plan went to a file.
				if cmd.String("output") != "" {
					fmt.Fprintln(cmd.Root().ErrWriter, "Error:", plan.Error)
				}
				return fmt.Errorf("%w: %w", ErrPlanFailed, plan.Err)
			}
			return nil
		},
	}
}

func preferencesFromCmd(cmd *cli.Command) models.HealthPreferences {
	prefs := models.HealthPreferences{
		DietType: models.DietType(cmd.String("diet")),
		MealType: cmd.String("meal-type"),
	}
	for _, c := range cmd.StringSlice("condition") {
		prefs.Conditions = append(prefs.Conditions, models.Condition(c))
	}
	for _, a := range cmd.StringSlice("allergy") {
		prefs.Allergies = append(prefs.Allergies, models.Allergy(a))
	}
	return prefs
}
