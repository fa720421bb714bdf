package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/infrastructure/ratelimit"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

// IPRateLimit throttles requests per client IP. It fronts the public contact
// endpoint as a cheap first line of defense before the per-address throttle
// inside the use case. A limiter error fails open so a Redis outage never
// blocks traffic.
func IPRateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
