package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairbay/internal/infrastructure/ratelimit"
	"repairbay/internal/shared/logger"
	"repairbay/internal/shared/utils"
)

// IntakeRateLimit guards the public intake endpoints. Keys are client IPs;
// limits apply per minute, hour and day through the sliding window limiter.
// When redis is unreachable requests pass.
func IntakeRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), config)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err)
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
