package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	retentionUsecases "repairbay/internal/application/retention/usecases"
	"repairbay/internal/infrastructure/config"
	"repairbay/internal/infrastructure/database"
	"repairbay/internal/infrastructure/repository"
	"repairbay/internal/shared/db"
	"repairbay/internal/shared/logger"
)

var env string

// NewCommand returns the one-shot retention sweep. Useful for cron setups
// that prefer an external scheduler over the worker process.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the customer retention sweep once",
		Long:  `Purge customers whose newest job is past the retention window, then exit.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	sweepUC := retentionUsecases.NewSweepExpiredCustomersUseCase(
		repository.NewCustomerRepository(database.Get()),
		repository.NewJobRepository(database.Get()),
		repository.NewCommunicationRepository(database.Get()),
		db.NewTransactionManager(database.Get()),
		time.Duration(cfg.Retention.WindowDays)*24*time.Hour,
		log,
	)

	purged, err := sweepUC.Execute(context.Background())
	if err != nil {
		return fmt.Errorf("retention sweep failed: %w", err)
	}

	log.Infow("retention sweep finished", "purged", purged)
	return nil
}
