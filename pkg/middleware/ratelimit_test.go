package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClientIP(t *testing.T) {
	t.Run("uses remote address host", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.10:54321"

		assert.Equal(t, "192.0.2.10", clientIP(r))
	})

	t.Run("takes first hop from forwarded chain", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:80"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 70.41.3.18, 150.172.238.178")

		assert.Equal(t, "203.0.113.7", clientIP(r))
	})

	t.Run("single forwarded address", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7")

		assert.Equal(t, "203.0.113.7", clientIP(r))
	})

	t.Run("falls back on empty forwarded entry", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.10:54321"
		r.Header.Set("X-Forwarded-For", " , 203.0.113.7")

		assert.Equal(t, "192.0.2.10", clientIP(r))
	})
}

func TestRateLimitDisabled(t *testing.T) {
	handler := RateLimit(nil, zap.NewNop(), "test", 5, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
