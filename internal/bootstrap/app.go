package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/QuestBot_Go/internal/catalog"
	"github.com/osse101/QuestBot_Go/internal/config"
	"github.com/osse101/QuestBot_Go/internal/game"
	"github.com/osse101/QuestBot_Go/internal/playerstore"
	"github.com/osse101/QuestBot_Go/internal/server"
	"github.com/osse101/QuestBot_Go/internal/session"
	"github.com/osse101/QuestBot_Go/internal/worker"
)

// ShutdownTimeout bounds GracefulShutdown when Run exits
const ShutdownTimeout = 30 * time.Second

// App is the fully wired service
type App struct {
	Storage  *Storage
	Catalog  *catalog.Catalog
	Sessions *session.Registry
	Game     game.Service
	Server   *server.Server
	Reaper   *worker.IdleSessionReaper
}

// NewApp wires storage, the engine and the HTTP server from cfg
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	st, err := InitializeStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app, err := newApp(cfg, st)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.Config, st *Storage) (*App, error) {
	cat, err := catalog.New(st.World)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildCatalog, err)
	}

	store := playerstore.New(st.Players, cat, playerstore.Options{
		MaxRetries: cfg.PersistMaxRetries,
		RetryDelay: cfg.PersistRetryDelay,
		CacheSize:  cfg.PlayerCacheSize,
		CacheTTL:   cfg.PlayerCacheTTL,
	})
	sessions := session.NewRegistry(store, cfg.MaxActivePlayers)
	svc := game.NewService(game.World{Catalog: cat, Sessions: sessions})

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, svc, st.Dependencies...)

	reaper := worker.NewIdleSessionReaper(sessions, worker.ReaperConfig{
		IdleTimeout:   cfg.SessionIdleTimeout,
		SweepInterval: cfg.SessionSweepInterval,
	})

	return &App{
		Storage:  st,
		Catalog:  cat,
		Sessions: sessions,
		Game:     svc,
		Server:   srv,
		Reaper:   reaper,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
func (a *App) Run(ctx context.Context) error {
	a.Reaper.Start(ctx)

	errChan := make(chan error, 1)
	go func() {
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-errChan:
		if ok {
			slog.Error("Server failed", "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	a.Shutdown(shutdownCtx)
	return runErr
}

// Shutdown releases everything NewApp created
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:   a.Server,
		Reaper:   a.Reaper,
		Sessions: a.Sessions,
		Storage:  a.Storage,
	})
}
