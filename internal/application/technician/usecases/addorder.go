package usecases

import (
	"context"
	"errors"
	"time"

	"repairbay/internal/domain/job"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type AddOrderCommand struct {
	JobID       uint
	Description string
	Quantity    int
	TotalCost   float64
}

type AddOrderResult struct {
	OrderID   uint
	JobID     uint
	OrderDate time.Time
}

type AddOrderUseCase struct {
	jobRepo   job.Repository
	orderRepo job.OrderRepository
	logger    logger.Interface
}

func NewAddOrderUseCase(
	jobRepo job.Repository,
	orderRepo job.OrderRepository,
	logger logger.Interface,
) *AddOrderUseCase {
	return &AddOrderUseCase{
		jobRepo:   jobRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *AddOrderUseCase) Execute(ctx context.Context, cmd AddOrderCommand) (*AddOrderResult, error) {
	if _, err := uc.jobRepo.FindByID(ctx, cmd.JobID); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	order, err := job.NewOrder(cmd.JobID, cmd.Description, cmd.Quantity, cmd.TotalCost, time.Now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		uc.logger.Errorw("failed to save order", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("order added", "job_id", cmd.JobID, "order_id", order.ID())

	return &AddOrderResult{
		OrderID:   order.ID(),
		JobID:     cmd.JobID,
		OrderDate: order.OrderDate(),
	}, nil
}
