package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/QuestBot_Go/internal/logger"
)

// PoolConfig sizes the Postgres connection pool
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
}

// NewPool connects to Postgres and pings it before returning
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pgCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	pgCfg.MaxConns = clampConns(cfg.MaxConns)
	pgCfg.MinConns = min(DefaultMinConnections, pgCfg.MaxConns)
	pgCfg.MaxConnLifetime = cfg.MaxConnLife
	pgCfg.MaxConnIdleTime = cfg.MaxConnIdle

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgConnectedToDatabase,
		"host", pgCfg.ConnConfig.Host,
		"database", pgCfg.ConnConfig.Database,
		"max_conns", pgCfg.MaxConns)
	return pool, nil
}

func clampConns(n int) int32 {
	switch {
	case n < 1:
		return 1
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(n)
	}
}
