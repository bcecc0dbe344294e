package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and route
func RateLimiter(rdb redis.Cmdable, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[rate-limit] redis error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// first hit of the window fixes its expiry
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := rdb.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Printf("[rate-limit] failed to set window: %v", err)
			}
		}

		resetAt := time.Now().Add(window)
		if resetAtUnix, err := rdb.Get(ctx, resetKey).Int64(); err == nil {
			resetAt = time.Unix(resetAtUnix, 0)
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		}
		c.Set(models.RateLimiterContextKey, rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
