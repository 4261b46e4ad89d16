package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/QuestBot_Go/internal/logger"
)

// AuthMiddleware validates API key
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isPublicPath matches exact public paths and their subpaths only
func isPublicPath(path string) bool {
	for _, public := range PublicPaths {
		if path == public || strings.HasPrefix(path, public+"/") {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow holds one client's counters for the window starting at start
type ipWindow struct {
	start    time.Time
	requests int
	failures int
}

// SuspiciousActivityDetector keeps a rolling window per client IP. Each IP's
// window starts with its first request, so one busy client never resets the
// budget of another.
type SuspiciousActivityDetector struct {
	mu        sync.Mutex
	windows   map[string]*ipWindow
	lastSweep time.Time
	now       func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows:   make(map[string]*ipWindow),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// window returns ip's live window, opening a fresh one when the old has lapsed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	now := s.now()
	if now.Sub(s.lastSweep) > DetectorWindow {
		for key, w := range s.windows {
			if now.Sub(w.start) > DetectorWindow {
				delete(s.windows, key)
			}
		}
		s.lastSweep = now
	}

	w, ok := s.windows[ip]
	if !ok || now.Sub(w.start) > DetectorWindow {
		w = &ipWindow{start: now}
		s.windows[ip] = w
	}
	return w
}

// RecordFailedAuth counts a rejected API key and warns once ip reaches the alert threshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failures++
	if w.failures >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failures)
	}
}

// RecordRequest reports whether ip is still within its request budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++
	if w.requests <= MaxRequestsPerWindow {
		return true
	}
	if w.requests%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// counts returns ip's current request and failure counts
func (s *SuspiciousActivityDetector) counts(ip string) (requests, failures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[ip]; ok {
		return w.requests, w.failures
	}
	return 0, 0
}

// SecurityLoggingMiddleware enhances logging with security information and enforces rate limits
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				logger.FromContext(r.Context()).Warn("Request rate limited", "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy. Trusted entries may be single addresses or CIDR prefixes.
func extractIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !isTrustedProxy(peer, trustedProxies) {
		return peer
	}

	hops := strings.Split(forwarded, ",")
	if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
		return hop
	}
	return peer
}

func isTrustedProxy(peer string, trusted []string) bool {
	addr, err := netip.ParseAddr(peer)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, entry := range trusted {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			if prefix.Contains(addr) {
				return true
			}
			continue
		}
		if other, err := netip.ParseAddr(entry); err == nil && other.Unmap() == addr {
			return true
		}
	}
	return false
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// player snapshots change with every action
			h.Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
