package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/QuestBot_Go/internal/server"
	"github.com/osse101/QuestBot_Go/internal/session"
	"github.com/osse101/QuestBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Reaper   *worker.IdleSessionReaper
	Sessions *session.Registry
	Storage  *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Idle session reaper (finish in-flight evictions)
// 3. Active sessions (save every player)
// 4. Storage connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Reaper != nil {
		if err := components.Reaper.Shutdown(ctx); err != nil {
			slog.Error(LogMsgReaperShutdownFailed, "error", err)
		}
	}

	if components.Sessions != nil {
		slog.Info(LogMsgEndingSessions, "active", components.Sessions.ActiveCount())
		if err := components.Sessions.UnregisterAll(ctx); err != nil {
			slog.Error(LogMsgSessionsNotSaved, "error", err, "remaining", components.Sessions.ActiveCount())
		}
	}

	if components.Storage != nil {
		if err := components.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
