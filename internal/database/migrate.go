package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps its dialect and filesystem in package state
var gooseMu sync.Mutex

// Migrate applies every pending embedded migration and returns the resulting
// schema version.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(MigrationsDialect); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	return version, nil
}
