package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	retentionUsecases "repairbay/internal/application/retention/usecases"
	"repairbay/internal/infrastructure/config"
	"repairbay/internal/infrastructure/database"
	"repairbay/internal/infrastructure/repository"
	"repairbay/internal/infrastructure/scheduler"
	"repairbay/internal/shared/db"
	"repairbay/internal/shared/logger"
)

// The worker runs the retention sweep scheduler. It is a separate process so
// the HTTP server can be scaled out without multiplying sweeps.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting retention worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	sweepUC := retentionUsecases.NewSweepExpiredCustomersUseCase(
		repository.NewCustomerRepository(database.Get()),
		repository.NewJobRepository(database.Get()),
		repository.NewCommunicationRepository(database.Get()),
		db.NewTransactionManager(database.Get()),
		time.Duration(cfg.Retention.WindowDays)*24*time.Hour,
		log,
	)

	retentionScheduler := scheduler.NewRetentionScheduler(
		sweepUC,
		time.Duration(cfg.Retention.SweepIntervalHours)*time.Hour,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retentionScheduler.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down retention worker")
	retentionScheduler.Stop()
	log.Infow("retention worker exited")
}
