package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// readinessTimeout bounds each dependency probe
const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is a dependency that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Dependency names a Pinger for readiness reporting
type Dependency struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready only when every dependency answers
func HandleReadyz(deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, dep := range deps {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			err := dep.Pinger.Ping(ctx)
			cancel()

			if err != nil {
				slog.Error("Readiness check failed", "dependency", dep.Name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: dep.Name + " connection failed",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
