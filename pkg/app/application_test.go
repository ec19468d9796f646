package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/client"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	router.POST("/api/v1/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusCreated)
	})
	router.GET("/api/v1/panic", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		panic("boom")
	})
}

func newTestApp(t *testing.T, rateLimit int) *Application {
	t.Helper()
	cfg := &config.Config{
		Port:              "8080",
		RateLimitRequests: rateLimit,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
		IdempotencyTTL:    time.Minute,
		MaxRequestSize:    1024,
		MetricsEnabled:    true,
		Log:               logger.Discard(),
		Client:            client.NewClient(),
	}
	a := NewApplication(cfg)
	a.SetApp(pingHandler{})
	t.Cleanup(func() {
		a.idempotencyStore.Stop()
		a.rateLimiter.Stop()
	})
	return a
}

func do(a *Application, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	return w
}

func TestRouting(t *testing.T) {
	a := newTestApp(t, 100)

	assert.Equal(t, http.StatusOK, do(a, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(a, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, do(a, http.MethodGet, "/api/v1/ping", "").Code)
	assert.Equal(t, http.StatusNotFound, do(a, http.MethodGet, "/api/v1/nothing", "").Code)

	w := do(a, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRecoveryInStack(t *testing.T) {
	a := newTestApp(t, 100)
	assert.Equal(t, http.StatusInternalServerError, do(a, http.MethodGet, "/api/v1/panic", "").Code)
}

func TestContentTypeEnforced(t *testing.T) {
	a := newTestApp(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ping", strings.NewReader("x"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	assert.Equal(t, http.StatusCreated, do(a, http.MethodPost, "/api/v1/ping", `{}`).Code)
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	a := newTestApp(t, 2)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(a, http.MethodGet, "/api/v1/ping", "").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(a, http.MethodGet, "/api/v1/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(a, http.MethodGet, "/health", "").Code)
}
