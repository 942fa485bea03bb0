package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pageza/mealcraft/backend/internal/models"
)

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:     "weight",
			Aliases:  []string{"w"},
			Usage:    "Body weight in kilograms",
			Required: true,
		},
		&cli.FloatFlag{
			Name:     "height",
			Usage:    "Height in centimetres",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "age",
			Usage: fmt.Sprintf("Age in years (%d-%d)", models.MinAge, models.MaxAge),
		},
		&cli.StringFlag{
			Name:  "gender",
			Usage: fmt.Sprintf("Gender (supported values: %v)", models.Genders()),
		},
		&cli.StringFlag{
			Name:  "activity",
			Usage: fmt.Sprintf("Activity level (supported values: %v)", models.ActivityLevels()),
		},
	}
}

func profileFromCmd(cmd *cli.Command) models.UserProfile {
	return models.UserProfile{
		Age:           cmd.Int("age"),
		WeightKg:      cmd.Float("weight"),
		HeightCm:      cmd.Float("height"),
		Gender:        models.Gender(cmd.String("gender")),
		ActivityLevel: models.ActivityLevel(cmd.String("activity")),
	}
}
