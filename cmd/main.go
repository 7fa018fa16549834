package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "songbreeze",
		Usage:    "Browse your music library in the terminal",
		Version:  "0.1.0",
		Flags:    rootFlags(),
		Before:   runner.before,
		Action:   runner.TUI,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if exitCode(err) == 0 {
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// exitCode maps a command error to the process exit status. Declining init is a clean exit.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, shared.ErrInitDeclined):
		return 0
	default:
		return 1
	}
}
