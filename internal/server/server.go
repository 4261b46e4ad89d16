package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/QuestBot_Go/internal/game"
	"github.com/osse101/QuestBot_Go/internal/handler"
	"github.com/osse101/QuestBot_Go/internal/logger"
	"github.com/osse101/QuestBot_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxRequestBytes int64
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance. Readiness reports on deps.
func NewServer(opts Options, svc game.Service, deps ...handler.Dependency) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	maxBytes := opts.MaxRequestBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestBytes
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps...))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterPlayer(svc))

			r.Route("/{"+handler.URLParamPlayerID+"}", func(r chi.Router) {
				r.Get("/", handler.HandleStatus(svc))
				r.Delete("/", handler.HandleDeletePlayer(svc))
				r.Delete("/session", handler.HandleUnregister(svc))
				r.Post("/class", handler.HandleChooseClass(svc))
				r.Get("/connections", handler.HandleConnections(svc))

				r.Post("/explore", handler.HandleExplore(svc))
				r.Post("/move", handler.HandleMove(svc))

				r.Route("/combat", func(r chi.Router) {
					r.Post("/", handler.HandleEnterCombat(svc))
					r.Post("/attack", handler.HandleAttack(svc))
					r.Post("/flee", handler.HandleFlee(svc))
					r.Post("/potion", handler.HandleUsePotion(svc))
				})

				r.Post("/equip", handler.HandleEquip(svc))
				r.Post("/unequip", handler.HandleUnequip(svc))
				r.Post("/sell", handler.HandleSell(svc))
				r.Post("/use", handler.HandleUseItem(svc))

				r.Post("/actions", handler.HandleDispatch(svc))
			})
		})

		r.Route("/world", func(r chi.Router) {
			r.Get("/locations", handler.HandleListLocations(svc))
			r.Get("/items", handler.HandleListItems(svc))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the router, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// isQuietPath reports whether requests to path are too frequent to log
func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
