package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/mealcraft/backend/config"
	"github.com/pageza/mealcraft/backend/internal/api"
	"github.com/pageza/mealcraft/backend/internal/logging"
	"github.com/pageza/mealcraft/backend/internal/server"
	"github.com/pageza/mealcraft/backend/internal/service"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	logging.SetDefaultStructuredLogger("mealcraft-api", version)

	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logging.SetDefaultStructuredLoggerWithLevel("mealcraft-api", version, cfg.LogLevel)
	api.Version = version

	slog.Info("starting server",
		"version", version,
		"environment", config.GetEnvironment(),
		"addr", cfg.Addr(),
		"bmi_bands", cfg.BMIBands,
		"calorie_mode", cfg.CalorieMode)

	srv := server.New(cfg, service.NewPlanServiceFromConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	return g.Wait()
}
