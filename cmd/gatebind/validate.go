package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gatesim/gatebind/internal/config"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate a configuration file",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated configuration",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
		},
	},
	Suggest: true,
	Action:  validateAction,
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	// Positional argument also works
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Configuration file %s is valid\n", configPath)

	if cmd.Bool("tree") {
		fmt.Println(cfg)
		return nil
	}

	fmt.Println(renderConfigSummary(configPath, cfg))
	return nil
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	summary.WriteString(fmt.Sprintf("- Version: %s\n", cfg.Version))
	summary.WriteString(fmt.Sprintf("- Actors: %d\n", len(cfg.Actors)))
	if cfg.Script.Enabled() {
		summary.WriteString(fmt.Sprintf("- Script: %s\n", cfg.Script.Evaluator))
	} else {
		summary.WriteString("- Script: none\n")
	}
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
