package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"
	"go-checkin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency replays the cached response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first request is still running.
// The handler owns the keys it finds in the context: it deletes the lock and
// stores the response under the cache key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L())
		userID := c.GetString("user_id")

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock" // Key khusus untuk locking

		// 1. Cek cache
		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			logger.Debug("idempotent replay", zap.String("key", cacheKey))
			c.Data(http.StatusOK, "application/json; charset=utf-8", val)
			c.Abort()
			return
		}
		if !errors.Is(err, redis.Nil) {
			logger.Error("idempotency cache lookup failed", zap.Error(err))
			response.ServiceError(c, apperror.Upstream(err))
			c.Abort()
			return
		}

		// 2. Atomic lock, expiry pendek agar lock hilang sendiri jika server crash
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Error("idempotency lock failed", zap.Error(err))
			response.ServiceError(c, apperror.Upstream(err))
			c.Abort()
			return
		}
		if !isNew {
			response.AbortWithError(c, http.StatusConflict, "PROCESSING", "Your request is still being processed, please wait.", nil)
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
