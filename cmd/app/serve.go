package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestBot_Go/internal/bootstrap"
	"github.com/osse101/QuestBot_Go/internal/config"
)

var (
	skipEnvCheck bool
	logToFile    bool
	servePort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP game server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipEnvCheck, "skip-env-check", false, "skip ENV_SCHEMA_VERSION and required variable checks")
	serveCmd.Flags().BoolVar(&logToFile, "log-file", true, "also write logs to a file under LOG_DIR")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override PORT")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	if logToFile {
		logFile, err := bootstrap.SetupLogger(cfg)
		if err != nil {
			return err
		}
		defer logFile.Close()
	} else {
		bootstrap.SetupConsoleLogger(cfg)
	}

	if !skipEnvCheck {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return fmt.Errorf("environment check failed: %w", err)
		}
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
