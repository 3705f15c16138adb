package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/redis/go-redis/v9"
)

const contactRateLimitMessage = "Too many requests. Please try again later."

// ContactRateLimiter limits contact submissions per client IP with a fixed
// window kept in Redis (INCR + EXPIRE in one transaction). Redis failures let
// the request through.
func ContactRateLimiter(redisClient redis.Cmdable, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := contactRateLimitKey(c.ClientIP())

		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)

		if _, err := pipe.Exec(ctx); err != nil {
			logger.FromContext(ctx).Warnw("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		count := incr.Val()
		if count > int64(limit) {
			ttl, err := redisClient.TTL(ctx, key).Result()
			if err != nil || ttl <= 0 {
				ttl = window
			}

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(ttl).Unix()))

			_ = c.Error(apperrors.RateLimitExceeded(contactRateLimitMessage, int(ttl.Seconds())))
			c.Abort()
			return
		}

		remaining := limit - int(count)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

		c.Next()
	}
}

func contactRateLimitKey(ip string) string {
	return fmt.Sprintf("ratelimit:contact:%s", ip)
}
