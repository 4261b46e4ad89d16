package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestBot_Go/internal/bootstrap"
	"github.com/osse101/QuestBot_Go/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and seed the world catalog",
	Long: `Connects to PostgreSQL, applies pending migrations and seeds the catalog
tables from WORLD_SEED_PATH (or the built-in world) when they are empty.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.StoreBackend != config.BackendPostgres {
		return fmt.Errorf("migrate requires STORE_BACKEND=%s, got %q", config.BackendPostgres, cfg.StoreBackend)
	}
	bootstrap.SetupConsoleLogger(cfg)

	st, err := bootstrap.InitializeStorage(context.Background(), cfg)
	if err != nil {
		return err
	}
	return st.Close()
}
