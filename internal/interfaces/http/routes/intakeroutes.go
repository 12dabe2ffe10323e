package routes

import (
	"github.com/gin-gonic/gin"

	"repairbay/internal/infrastructure/ratelimit"
	"repairbay/internal/interfaces/http/handlers"
	"repairbay/internal/interfaces/http/middleware"
)

type IntakeRouteConfig struct {
	IntakeHandler *handlers.IntakeHandler
	RateLimiter   ratelimit.RateLimiter
	RateLimits    ratelimit.RateLimitConfig
}

// SetupIntakeRoutes registers the public booking form endpoints. These are
// unauthenticated, so they sit behind the per-IP rate limiter.
func SetupIntakeRoutes(engine *gin.Engine, config *IntakeRouteConfig) {
	intake := engine.Group("/api/intake")
	if config.RateLimiter != nil {
		intake.Use(middleware.IntakeRateLimit(config.RateLimiter, config.RateLimits))
	}
	{
		intake.POST("/reservations", config.IntakeHandler.ReserveJob)
		intake.POST("/customers/resolve", config.IntakeHandler.ResolveCustomer)
		intake.POST("/submissions", config.IntakeHandler.FinalizeSubmission)
	}
}
