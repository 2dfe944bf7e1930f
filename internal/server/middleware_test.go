package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boxgym/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsMiddleware(t *testing.T) {
	router := okRouter(MetricsMiddleware())

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/test", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil)).Code)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(logger.New(core))
	t.Cleanup(func() { logger.Set(zap.NewNop().Sugar()) })

	router := okRouter(RequestLoggingMiddleware())

	serve(router, httptest.NewRequest(http.MethodGet, "/test?day=Monday", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/test?day=Monday", entries[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := okRouter(RateLimitMiddleware(1, 2))

	for i := 0; i < 2; i++ {
		w := serve(router, httptest.NewRequest(http.MethodPost, "/test", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := serve(router, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests, please slow down"}`, w.Body.String())

	other := httptest.NewRequest(http.MethodPost, "/test", nil)
	other.RemoteAddr = "10.0.0.9:1234"
	assert.Equal(t, http.StatusOK, serve(router, other).Code)
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	router := okRouter(RateLimitMiddleware(0, 0))

	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodPost, "/test", nil)).Code)
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1, visitorTTL)
	now := rl.now()
	rl.now = func() time.Time { return now }

	rl.Allow("1.1.1.1")
	require.Len(t, rl.visitors, 1)

	rl.now = func() time.Time { return now.Add(visitorTTL + time.Second) }
	rl.sweep()
	assert.Empty(t, rl.visitors)
}

func TestCorsMiddlewareAllowAll(t *testing.T) {
	router := okRouter(corsMiddleware([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsMiddlewarePreflight(t *testing.T) {
	router := okRouter(corsMiddleware(nil))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCorsMiddlewareAllowList(t *testing.T) {
	router := okRouter(corsMiddleware([]string{"https://3rdstreetboxing.com"}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://3rdstreetboxing.com")
	w := serve(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://3rdstreetboxing.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, serve(router, req).Code)
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/":    "/api",
		" /v1/api": "/v1/api",
	}
	for in, want := range tests {
		assert.Equal(t, want, basePath(in), "input %q", in)
	}
}
