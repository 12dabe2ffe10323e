package usecases

import (
	"context"
	"errors"
	"time"

	"repairbay/internal/domain/job"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type AddPaymentCommand struct {
	JobID       uint
	Amount      float64
	PaymentType string
}

type AddPaymentResult struct {
	PaymentID uint
	JobID     uint
	PaidAt    time.Time
}

type AddPaymentUseCase struct {
	jobRepo     job.Repository
	paymentRepo job.PaymentRepository
	logger      logger.Interface
}

func NewAddPaymentUseCase(
	jobRepo job.Repository,
	paymentRepo job.PaymentRepository,
	logger logger.Interface,
) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		jobRepo:     jobRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *AddPaymentUseCase) Execute(ctx context.Context, cmd AddPaymentCommand) (*AddPaymentResult, error) {
	if _, err := uc.jobRepo.FindByID(ctx, cmd.JobID); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	payment, err := job.NewPayment(cmd.JobID, cmd.Amount, cmd.PaymentType, time.Now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		uc.logger.Errorw("failed to save payment", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("payment added", "job_id", cmd.JobID, "payment_id", payment.ID())

	return &AddPaymentResult{
		PaymentID: payment.ID(),
		JobID:     cmd.JobID,
		PaidAt:    payment.PaidAt(),
	}, nil
}
