package middleware

import (
	"github.com/PILLP-HO/pillp-lms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID accepts an inbound X-Request-ID or mints one, and propagates it
// through both the gin context and the request's standard context, along with
// a request-scoped logger carrying the id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithLogger(ctx, zap.L().With(zap.String("request_id", rid)))
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}
