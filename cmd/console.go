package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/flow"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/screens"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/shared"
	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// Console runs the interactive operator session until the operator exits or input ends.
func (r *Runner) Console(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with screen output
	fileLogger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.config.LogLevel())
	r.SetLogger(fileLogger)

	svc, err := r.open(ctx, cmd)
	if err != nil {
		return err
	}

	reader := ui.NewLineReader(r.input, r.output, r.config.Console.HistoryFile)
	console := ui.NewConsole(r.output, reader, ui.Options{
		ClearScreen: r.config.Console.ClearScreen,
		AppName:     "Locadora",
	})
	defer console.Close()

	nav := flow.NewController(shared.WithLogger(r.logger, "component", "flow"))
	app := screens.New(flow.View{Console: console, Nav: nav}, svc, screens.Options{
		PageSize:   r.config.Console.PageSize,
		DateLayout: r.config.Console.DateLayout,
		Logger:     r.logger,
	})

	r.logger.Info("console session started", "db", r.config.Database.Path)
	outcome := nav.GoTo(ctx, app.MainMenu())
	r.logger.Info("console session ended", "outcome", outcome)

	console.Println()
	console.Notify(ui.Info("Bye."))
	return nil
}
