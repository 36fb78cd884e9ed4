package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "bearer abc", "Bearer a b"} {
		_, ok := bearerToken(header)
		assert.False(t, ok, header)
	}
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	rl := NewRateLimiter(0, 10)
	assert.Nil(t, rl)

	h := rl.Handle(okHandler)
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	rl.Stop()
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Stop()
	h := rl.Handle(okHandler)

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:5001"))
	assert.Equal(t, http.StatusNoContent, serve("10.0.0.2:5000"))
}

func TestCORSMiddleware_AllowList(t *testing.T) {
	h := NewCORSMiddleware([]string{"https://app.example.com"}).Handle(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	rec := httptest.NewRecorder()
	RequestLogger(log)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Contains(t, buf.String(), `"path":"/api/health"`)
	assert.Contains(t, buf.String(), `"status":204`)
}
