package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("No dependencies", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz().ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("All dependencies reachable", func(t *testing.T) {
		db := &mockPinger{}
		db.On("Ping", mock.Anything).Return(nil)
		cache := &mockPinger{}
		cache.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(Dependency{"database", db}, Dependency{"redis", cache}).
			ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("Database connection failed", func(t *testing.T) {
		db := &mockPinger{}
		db.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(Dependency{"database", db}).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"database connection failed"`)
		db.AssertExpectations(t)
	})

	t.Run("Later dependency timeout", func(t *testing.T) {
		var probed bool
		db := PingFunc(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			probed = hasDeadline
			return nil
		})
		cache := &mockPinger{}
		cache.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		w := httptest.NewRecorder()
		HandleReadyz(Dependency{"database", db}, Dependency{"redis", cache}).
			ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.True(t, probed, "probe should run under a deadline")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"redis connection failed"`)
	})
}
