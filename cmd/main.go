package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{
		ConfigPath: "config.toml",
		Logger:     logger,
		Input:      os.Stdin,
	})

	app := &cli.Command{
		Name:     "locadora",
		Usage:    "Vehicle rental operator console",
		Version:  "0.1.0",
		Flags:    []cli.Flag{rootConfigFlag()},
		Action:   runner.Console,
		Commands: runner.register(),
	}

	err := app.Run(context.Background(), os.Args)
	if cerr := runner.Close(); cerr != nil {
		logger.Warn("failed to close database", "error", cerr)
	}

	if err != nil {
		if errors.Is(err, shared.ErrInvalidConfig) {
			logger.Fatal("invalid configuration, fix it or run `locadora setup --force`", "error", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
