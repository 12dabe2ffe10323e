package usecases

import (
	"context"
	"time"

	"repairbay/internal/domain/customer"
	"repairbay/internal/domain/job"
	"repairbay/internal/shared/db"
	"repairbay/internal/shared/logger"
)

// SweepExpiredCustomersUseCase purges customers whose newest job started
// before the retention window, along with customers holding no jobs at all.
//
// Inside one transaction it clears device passwords on the affected jobs,
// deletes the customers' message history, detaches the jobs and removes the
// customer rows. The anonymized job rows stay for bookkeeping. After the
// commit the customer identifier allocator is compacted so freed numbers are
// reused; on MySQL that statement is DDL and cannot live inside the
// transaction.
type SweepExpiredCustomersUseCase struct {
	customerRepo customer.Repository
	jobRepo      job.Repository
	commRepo     job.CommunicationRepository
	txManager    *db.TransactionManager
	window       time.Duration
	logger       logger.Interface
}

func NewSweepExpiredCustomersUseCase(
	customerRepo customer.Repository,
	jobRepo job.Repository,
	commRepo job.CommunicationRepository,
	txManager *db.TransactionManager,
	window time.Duration,
	logger logger.Interface,
) *SweepExpiredCustomersUseCase {
	return &SweepExpiredCustomersUseCase{
		customerRepo: customerRepo,
		jobRepo:      jobRepo,
		commRepo:     commRepo,
		txManager:    txManager,
		window:       window,
		logger:       logger,
	}
}

// Execute runs one sweep and returns the number of customers purged.
func (uc *SweepExpiredCustomersUseCase) Execute(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-uc.window)

	var purged int
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		ids, err := uc.customerRepo.FindExpiredIDs(txCtx, cutoff)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := uc.jobRepo.ClearPasswordsByCustomerIDs(txCtx, ids); err != nil {
			return err
		}
		if err := uc.commRepo.DeleteByCustomerIDs(txCtx, ids); err != nil {
			return err
		}
		if err := uc.jobRepo.DetachCustomers(txCtx, ids); err != nil {
			return err
		}
		if err := uc.customerRepo.DeleteByIDs(txCtx, ids); err != nil {
			return err
		}

		purged = len(ids)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("retention sweep failed", "error", err)
		return 0, err
	}

	if purged == 0 {
		uc.logger.Debugw("retention sweep found nothing to purge", "cutoff", cutoff)
		return 0, nil
	}

	// Compaction runs outside the purge transaction. A failure here leaves a
	// gap in the identifier sequence, nothing worse; the next sweep retries.
	if err := uc.customerRepo.CompactIdentitySequence(ctx); err != nil {
		uc.logger.Warnw("failed to compact customer sequence", "error", err)
	}

	uc.logger.Infow("retention sweep completed", "purged", purged, "cutoff", cutoff)
	return purged, nil
}
