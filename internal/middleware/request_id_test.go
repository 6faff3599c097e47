package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PILLP-HO/pillp-lms/internal/middleware"
	"github.com/PILLP-HO/pillp-lms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRequestIDRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", handler)
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("inbound id is propagated", func(t *testing.T) {
		var seen string
		router := newRequestIDRouter(func(c *gin.Context) {
			seen = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("missing id is minted", func(t *testing.T) {
		var seen string
		router := newRequestIDRouter(func(c *gin.Context) {
			seen = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("request-scoped logger carries the id", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		restore := zap.ReplaceGlobals(zap.New(core))
		defer restore()

		router := newRequestIDRouter(func(c *gin.Context) {
			contextutil.GetLogger(c.Request.Context(), nil).Info("handled")
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-456")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "req-456", entries[0].ContextMap()["request_id"])
	})
}
