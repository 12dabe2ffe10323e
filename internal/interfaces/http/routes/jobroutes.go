package routes

import (
	"github.com/gin-gonic/gin"

	"repairbay/internal/interfaces/http/handlers"
)

type JobRouteConfig struct {
	JobHandler   *handlers.JobHandler
	StatsHandler *handlers.StatsHandler
}

// SetupJobRoutes registers the technician-facing endpoints.
func SetupJobRoutes(engine *gin.Engine, config *JobRouteConfig) {
	jobs := engine.Group("/api/jobs")
	{
		// Specific action endpoints come before the generic /:id routes
		jobs.POST("/:id/communications", config.JobHandler.AddCommunication)
		jobs.POST("/:id/costs", config.JobHandler.AddCost)
		jobs.POST("/:id/orders", config.JobHandler.AddOrder)
		jobs.POST("/:id/payments", config.JobHandler.AddPayment)
		jobs.PATCH("/:id/status", config.JobHandler.UpdateJobStatus)

		jobs.GET("/:id", config.JobHandler.GetJob)
		jobs.DELETE("/:id", config.JobHandler.DeleteJob)
	}

	stats := engine.Group("/api/stats")
	{
		stats.GET("/howheard", config.StatsHandler.HowHeardStats)
	}
}
