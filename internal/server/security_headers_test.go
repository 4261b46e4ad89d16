package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	expected := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
		HeaderCacheControl:   HeaderValueNoStore,
	}

	tests := []struct {
		name string
		next http.Handler
		code int
	}{
		{name: "success response", next: okHandler(), code: http.StatusOK},
		{
			name: "error response",
			next: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusConflict)
			}),
			code: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SecurityHeadersMiddleware()(tt.next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/players/1", nil))

			assert.Equal(t, tt.code, rec.Code)
			for header, want := range expected {
				assert.Equal(t, want, rec.Header().Get(header), header)
			}
		})
	}
}
