package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	intakeUsecases "repairbay/internal/application/intake/usecases"
	technicianUsecases "repairbay/internal/application/technician/usecases"
	"repairbay/internal/domain/customer"
	"repairbay/internal/infrastructure/config"
	"repairbay/internal/infrastructure/email"
	"repairbay/internal/infrastructure/ratelimit"
	"repairbay/internal/infrastructure/repository"
	"repairbay/internal/interfaces/http/handlers"
	"repairbay/internal/interfaces/http/middleware"
	"repairbay/internal/interfaces/http/routes"
	"repairbay/internal/shared/db"
	"repairbay/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine        *gin.Engine
	intakeHandler *handlers.IntakeHandler
	jobHandler    *handlers.JobHandler
	statsHandler  *handlers.StatsHandler
	rateLimiter   ratelimit.RateLimiter
	cfg           *config.Config
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	jobRepo := repository.NewJobRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	howHeardRepo := repository.NewHowHeardRepository(database)
	commRepo := repository.NewCommunicationRepository(database)
	costRepo := repository.NewCostRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)

	txManager := db.NewTransactionManager(database)
	resolver := customer.NewResolver(customerRepo)

	var notifier intakeUsecases.BookingNotifier
	var pickupNotifier technicianUsecases.PickupNotifier
	if cfg.Email.Enabled {
		mailer := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
		notifier = mailer
		pickupNotifier = mailer
	}

	reserveJobUC := intakeUsecases.NewReserveJobUseCase(jobRepo, log)
	resolveCustomerUC := intakeUsecases.NewResolveCustomerUseCase(resolver, log)
	finalizeSubmissionUC := intakeUsecases.NewFinalizeSubmissionUseCase(
		jobRepo, howHeardRepo, resolver, txManager, notifier, log)

	getJobUC := technicianUsecases.NewGetJobUseCase(
		jobRepo, customerRepo, commRepo, costRepo, orderRepo, paymentRepo, howHeardRepo, log)
	updateJobStatusUC := technicianUsecases.NewUpdateJobStatusUseCase(jobRepo, customerRepo, pickupNotifier, log)
	deleteJobUC := technicianUsecases.NewDeleteJobUseCase(jobRepo, txManager, log)
	addCommUC := technicianUsecases.NewAddCommunicationUseCase(jobRepo, commRepo, log)
	addCostUC := technicianUsecases.NewAddCostUseCase(jobRepo, costRepo, log)
	addOrderUC := technicianUsecases.NewAddOrderUseCase(jobRepo, orderRepo, log)
	addPaymentUC := technicianUsecases.NewAddPaymentUseCase(jobRepo, paymentRepo, log)
	howHeardStatsUC := technicianUsecases.NewHowHeardStatsUseCase(howHeardRepo, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine: engine,
		intakeHandler: handlers.NewIntakeHandler(
			reserveJobUC, resolveCustomerUC, finalizeSubmissionUC),
		jobHandler: handlers.NewJobHandler(
			getJobUC, updateJobStatusUC, deleteJobUC,
			addCommUC, addCostUC, addOrderUC, addPaymentUC),
		statsHandler: handlers.NewStatsHandler(howHeardStatsUC),
		rateLimiter:  limiter,
		cfg:          cfg,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", r.healthCheck)

	routes.SetupIntakeRoutes(r.engine, &routes.IntakeRouteConfig{
		IntakeHandler: r.intakeHandler,
		RateLimiter:   r.rateLimiter,
		RateLimits: ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.Intake.RequestsPerMinute,
			RequestsPerHour:   r.cfg.Intake.RequestsPerHour,
			RequestsPerDay:    r.cfg.Intake.RequestsPerDay,
		},
	})

	routes.SetupJobRoutes(r.engine, &routes.JobRouteConfig{
		JobHandler:   r.jobHandler,
		StatsHandler: r.statsHandler,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UnixMilli(),
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
