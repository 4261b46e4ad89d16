package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/QuestBot_Go/internal/catalog"
	"github.com/osse101/QuestBot_Go/internal/config"
	"github.com/osse101/QuestBot_Go/internal/database"
	"github.com/osse101/QuestBot_Go/internal/database/memory"
	"github.com/osse101/QuestBot_Go/internal/database/postgres"
	"github.com/osse101/QuestBot_Go/internal/database/redisstore"
	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/handler"
	"github.com/osse101/QuestBot_Go/internal/repository"
)

// Storage is the persistence selected by STORE_BACKEND
type Storage struct {
	Players repository.Player
	World   domain.World

	// Dependencies are probed by /readyz
	Dependencies []handler.Dependency

	closers []func() error
}

// Close releases every backend connection
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// InitializeStorage connects the configured backend and resolves the world
// catalog. With postgres the catalog tables are seeded on first start and
// then read back, so the database is the source of truth; other backends
// use the seed world directly.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	seed, err := LoadSeedWorld(cfg.WorldSeedPath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, StorageConnectTimeout)
	defer cancel()

	var st *Storage
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		st, err = initPostgres(ctx, cfg, seed)
	case config.BackendRedis:
		st, err = initRedis(ctx, cfg, seed)
	case config.BackendMemory:
		st = &Storage{Players: memory.NewPlayerRepository(), World: seed}
	default:
		err = fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStorageReady, "backend", cfg.StoreBackend)
	return st, nil
}

func initPostgres(ctx context.Context, cfg *config.Config, seed domain.World) (*Storage, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxConnIdle: cfg.DBMaxConnIdle,
		MaxConnLife: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	st := &Storage{
		Players:      postgres.NewPlayerRepository(pool),
		Dependencies: []handler.Dependency{{Name: DependencyDatabase, Pinger: pool}},
		closers:      []func() error{func() error { pool.Close(); return nil }},
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	world, err := SyncWorld(ctx, postgres.NewWorldRepository(pool), seed)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	st.World = world
	return st, nil
}

func initRedis(ctx context.Context, cfg *config.Config, seed domain.World) (*Storage, error) {
	client, err := redisstore.NewClient(ctx, cfg.RedisAddr, &redisstore.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
	}

	players, err := redisstore.NewPlayerRepository(&redisstore.Config{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		Players: players,
		World:   seed,
		Dependencies: []handler.Dependency{{
			Name:   DependencyRedis,
			Pinger: handler.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() }),
		}},
		closers: []func() error{client.Close},
	}, nil
}

// LoadSeedWorld reads the world file at path, or the built-in world when
// path is empty
func LoadSeedWorld(path string) (domain.World, error) {
	var (
		world domain.World
		err   error
	)
	if path == "" {
		world, err = catalog.DefaultWorld()
	} else {
		world, err = catalog.LoadWorldFile(path)
	}
	if err != nil {
		return domain.World{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeedWorld, err)
	}
	return world, nil
}

// SyncWorld seeds the catalog tables when they are empty and returns the
// world as stored
func SyncWorld(ctx context.Context, repo repository.World, seed domain.World) (domain.World, error) {
	empty, err := repo.IsWorldEmpty(ctx)
	if err != nil {
		return domain.World{}, fmt.Errorf("%s: %w", ErrMsgFailedSyncWorld, err)
	}
	if empty {
		if err := repo.SeedWorld(ctx, seed); err != nil {
			return domain.World{}, fmt.Errorf("%s: %w", ErrMsgFailedSyncWorld, err)
		}
		slog.Info(LogMsgWorldSeeded,
			"items", len(seed.Items),
			"locations", len(seed.Locations),
			"monsters", len(seed.Monsters))
	}

	world, err := repo.LoadWorld(ctx)
	if err != nil {
		return domain.World{}, fmt.Errorf("%s: %w", ErrMsgFailedSyncWorld, err)
	}
	slog.Info(LogMsgWorldLoaded, "items", len(world.Items), "locations", len(world.Locations))
	return world, nil
}
