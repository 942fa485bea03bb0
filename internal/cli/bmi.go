package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/service"
)

func bandsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "bands",
		Value:   string(health.BandsLegacy),
		Usage:   fmt.Sprintf("BMI thresholds (%s or %s)", health.BandsLegacy, health.BandsContiguous),
		Sources: cli.EnvVars("BMI_BANDS"),
	}
}

func bmiCmd() *cli.Command {
	return &cli.Command{
		Name:  "bmi",
		Usage: "Compute and classify a body mass index",
		Description: `Computes BMI from weight and height and reports the weight status.
No network access is needed.`,
		Flags: append(profileFlags(), bandsFlag(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			bands, err := health.ParseBands(cmd.String("bands"))
			if err != nil {
				return err
			}

			report, err := service.NewPlanService(nil, bands, health.CalorieModeFixed).Evaluate(profileFromCmd(cmd))
			if err != nil {
				return err
			}

			out, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(out)

			return out.Write(report)
		},
	}
}
