// Package cli implements the mealcraft command-line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pageza/mealcraft/backend/config"
	"github.com/pageza/mealcraft/backend/internal/logging"
	"github.com/pageza/mealcraft/backend/internal/render"
	"github.com/pageza/mealcraft/backend/internal/service"
)

const name = "mealcraft"

// ErrPlanFailed is returned after a failed plan has been reported, so the
// caller can exit non-zero without printing the error twice. The message
// goes to stdout with the plan, or to the error writer when the plan was
// written to a file.
var ErrPlanFailed = errors.New("plan failed")

var (
	// overridden during build with ldflags
	version = "dev"

	loadConfig = config.LoadConfig
	newPlanner = func(cfg *config.Config) service.IPlanService {
		return service.NewPlanServiceFromConfig(cfg)
	}
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to this file instead of stdout",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(render.FormatText),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", render.SupportedFormats()),
	}
}

// NewCommand builds the root command. Output goes to stdout when nil.
func NewCommand(stdout io.Writer) *cli.Command {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &cli.Command{
		Name:      name,
		Usage:     "Health report and diet plan from body metrics and preferences",
		Version:   version,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting", "name", name, "version", version)
			return ctx, nil
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			bmiCmd(),
			planCmd(),
		},
	}
}

// Execute runs the tool with the process arguments.
func Execute(ctx context.Context) error {
	return NewCommand(os.Stdout).Run(ctx, os.Args)
}

// newOutputWriter honours --format and --output.
func newOutputWriter(cmd *cli.Command) (*render.Writer, error) {
	format, err := render.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}
	if path := cmd.String("output"); path != "" {
		return render.NewFileWriter(format, path)
	}
	return render.NewWriter(format, cmd.Root().Writer), nil
}

func closeWriter(w *render.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
