package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	playerIDKey  ctxKey = "playerID"
)

// InitLogger installs the process-wide slog logger writing to stdout.
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the process-wide slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID stored in ctx, or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// WithPlayerID tags ctx so every log line of the request carries the player.
func WithPlayerID(ctx context.Context, playerID int64) context.Context {
	return context.WithValue(ctx, playerIDKey, playerID)
}

// FromContext returns a logger that includes the request_id and player_id
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		l = l.With(AttrKeyRequestID, id)
	}
	if pid, ok := ctx.Value(playerIDKey).(int64); ok {
		l = l.With(AttrKeyPlayerID, pid)
	}
	return l
}

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Error logs at error level on the default logger.
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
