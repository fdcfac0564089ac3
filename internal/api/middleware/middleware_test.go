package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rtk-backend/internal/config"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestLoggerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupWithOutput("info", &buf)
	defer logger.Setup("info")

	router := newRouter(RequestID(), Logger())
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})

	req := httptest.NewRequest(http.MethodGet, "/missing?page=2", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/missing?page=2", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "warning", entry["level"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupWithOutput("info", &buf)
	defer logger.Setup("info")

	router := newRouter(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.Contains(t, buf.String(), "boom")
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := newRouter(CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}

func TestCORSWildcard(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"*", "http://localhost:3000"}}
	router := newRouter(CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("any origin without credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("listed origin keeps credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	router := newRouter(Metrics())
	router.GET("/api/v1/widgets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/widgets/42", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `route="/api/v1/widgets/:id"`)
	assert.NotContains(t, rec.Body.String(), "/api/v1/widgets/42")
}
