package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/app"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/config"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/logging"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	boot := func(opts cli.GlobalOptions) (*cli.App, error) {
		cfg, err := config.Load(config.Options{File: opts.ConfigFile})
		if err != nil {
			return nil, err
		}
		if opts.LogLevel != "" {
			cfg.Logging.Level = opts.LogLevel
		}
		if opts.NoColor {
			cfg.Logging.NoColor = true
		}
		if cfg.Logging.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			formatter.DisableColor()
		}

		// Logs go to stderr so command output stays clean.
		logger, err := logging.New(cfg.Logging, os.Stderr)
		if err != nil {
			logger.Warn().Err(err).Msg("falling back to warn level")
		}

		var services app.Services
		database, services, err = app.Open(ctx, app.Options{Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}

		return &cli.App{
			Services: services,
			UserID:   cfg.User.ID,
			IsInteractive: func() bool {
				return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			},
		}, nil
	}

	return cli.NewRootCmd(boot).ExecuteContext(ctx)
}
