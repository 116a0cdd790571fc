//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paseos-api/internal/handler/middleware"
	"paseos-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogConfig = config.LogConfig{
	Level:      "error",
	TimeZone:   "UTC",
	TimeFormat: time.RFC3339,
}

func newStackRouter(cors config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.NewCORSMiddleware(cors))
	r.Use(middleware.LoggingMiddleware(nil, testLogConfig))
	r.Use(middleware.ErrorHandler())

	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	r.GET("/silent-failure", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	router := newStackRouter(config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}})

	t.Run("generated and echoed in header", func(t *testing.T) {
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["request_id"])
		assert.Equal(t, body["request_id"], rec.Header().Get("X-Request-ID"))
	})

	t.Run("incoming id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "edge-42")

		rec := serve(router, req)

		assert.Equal(t, "edge-42", rec.Header().Get("X-Request-ID"))
	})
}

func TestRecoveryAndErrorHandler(t *testing.T) {
	router := newStackRouter(config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}})

	tests := []struct {
		name string
		path string
	}{
		{name: "panic becomes 500 envelope", path: "/panic"},
		{name: "unwritten error becomes 500 envelope", path: "/silent-failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		return req
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		router := newStackRouter(config.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{http.MethodGet},
			AllowCredentials: true,
		})

		rec := serve(router, preflight("http://localhost:3000"))

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		router := newStackRouter(config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{http.MethodGet},
		})

		rec := serve(router, preflight("http://evil.test"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		router := newStackRouter(config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{http.MethodGet},
			AllowCredentials: true,
		})

		rec := serve(router, preflight("http://anywhere.test"))

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("request id is exposed", func(t *testing.T) {
		router := newStackRouter(config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{http.MethodGet},
		})
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := serve(router, req)

		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})
}
