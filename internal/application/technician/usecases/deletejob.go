package usecases

import (
	"context"
	"errors"

	"repairbay/internal/domain/job"
	"repairbay/internal/shared/db"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

// DeleteJobUseCase removes a job and its dependent records in one
// transaction. The owning customer stays; customers are only ever removed by
// the retention sweep.
type DeleteJobUseCase struct {
	jobRepo   job.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewDeleteJobUseCase(
	jobRepo job.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteJobUseCase {
	return &DeleteJobUseCase{
		jobRepo:   jobRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteJobUseCase) Execute(ctx context.Context, jobID uint) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.jobRepo.Delete(txCtx, jobID)
	})
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return apperrors.NewNotFoundError("job not found")
		}
		uc.logger.Errorw("failed to delete job", "job_id", jobID, "error", err)
		return err
	}

	uc.logger.Infow("job deleted", "job_id", jobID)
	return nil
}
