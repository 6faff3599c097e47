package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PILLP-HO/pillp-lms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const submitLockTTL = 30 * time.Second

// SubmitLock guards submission endpoints against double-click duplicates.
// Clients may send an Idempotency-Key header; while a request with that key
// is in flight, a second one with the same key gets a 409. Redis being down
// never blocks a submission.
func SubmitLock(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.submit_lock")
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("submitlock:%s:%s", c.FullPath(), key)
		acquired, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", submitLockTTL).Result()
		if err != nil {
			logger.Warn("submit lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING",
				"Your submission is already being processed, please wait.")
			c.Abort()
			return
		}

		c.Next()
		if err := rdb.Del(c.Request.Context(), lockKey).Err(); err != nil {
			logger.Warn("submit lock release failed", zap.Error(err))
		}
	}
}
