package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gatesim/gatebind/internal/runtime"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Construct the declared instances and run until interrupted",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		configPath := cmd.String("config")
		if configPath == "" {
			return cli.Exit("The --config flag is required", 1)
		}

		logger := slog.Default()

		runner, err := runtime.NewRunner(
			configPath,
			runtime.WithLogger(logger.With("component", "runtime")),
			runtime.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create runner: %w", err), 1)
		}

		super, err := supervisor.New(
			supervisor.WithRunnables(runner),
			supervisor.WithLogHandler(logger.Handler()),
			supervisor.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
		}
		if err := super.Run(); err != nil {
			return cli.Exit(fmt.Errorf("failed to run: %w", err), 1)
		}

		logger.Info("Shutdown complete")
		return nil
	},
}
