package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gatesim/gatebind/internal/fancy"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "gatebind",
		Version: Version,
		Usage:   "Register and run OpenGATE binding modules",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			SetupLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			versionCmd,
			validateCmd,
			typesCmd,
			runCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", fancy.ErrorText("Error:"), err)
		os.Exit(1)
	}
}
