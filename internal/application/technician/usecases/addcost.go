package usecases

import (
	"context"
	"errors"

	"repairbay/internal/domain/job"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type AddCostCommand struct {
	JobID       uint
	CostType    string
	Amount      float64
	Description string
}

type AddCostResult struct {
	CostID uint
	JobID  uint
}

type AddCostUseCase struct {
	jobRepo  job.Repository
	costRepo job.CostRepository
	logger   logger.Interface
}

func NewAddCostUseCase(
	jobRepo job.Repository,
	costRepo job.CostRepository,
	logger logger.Interface,
) *AddCostUseCase {
	return &AddCostUseCase{
		jobRepo:  jobRepo,
		costRepo: costRepo,
		logger:   logger,
	}
}

func (uc *AddCostUseCase) Execute(ctx context.Context, cmd AddCostCommand) (*AddCostResult, error) {
	if _, err := uc.jobRepo.FindByID(ctx, cmd.JobID); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	cost, err := job.NewCost(cmd.JobID, cmd.CostType, cmd.Amount, cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.costRepo.Save(ctx, cost); err != nil {
		uc.logger.Errorw("failed to save cost", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("cost added", "job_id", cmd.JobID, "cost_id", cost.ID())

	return &AddCostResult{
		CostID: cost.ID(),
		JobID:  cmd.JobID,
	}, nil
}
