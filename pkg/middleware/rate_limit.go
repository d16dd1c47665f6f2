package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"smarttrip/pkg/ratelimit"
	"smarttrip/pkg/utils"
)

// RateLimit enforces a per-client-IP fixed-window quota on the routes it is
// attached to. Each route group gets its own limiter so heavy endpoints can
// carry tighter quotas than cheap reads.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !limiter.Allow(key) {
			retry := limiter.RetryAfter(key)
			c.Header("Retry-After", fmt.Sprintf("%d", int(retry.Round(time.Second).Seconds())))
			utils.HandleServiceError(c, utils.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
