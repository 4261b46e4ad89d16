package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < MaxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	count, _ := detector.counts(ip)
	if count != MaxRequestsPerWindow+1 {
		t.Errorf("expected count %d, got %d", MaxRequestsPerWindow+1, count)
	}
}
