package usecases

import (
	"context"
	"time"

	"repairbay/internal/domain/job"
	"repairbay/internal/shared/logger"
)

type ReserveJobResult struct {
	JobID     uint
	Status    string
	StartedAt time.Time
}

// ReserveJobUseCase allocates a job number up front so the intake form can
// display it before the customer has filled anything in. The reservation is a
// plain insert; sequential numbers come from the store's allocator.
type ReserveJobUseCase struct {
	jobRepo job.Repository
	logger  logger.Interface
}

func NewReserveJobUseCase(jobRepo job.Repository, logger logger.Interface) *ReserveJobUseCase {
	return &ReserveJobUseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (uc *ReserveJobUseCase) Execute(ctx context.Context) (*ReserveJobResult, error) {
	now := time.Now()
	reservation := job.NewReservation(now)

	if err := uc.jobRepo.Save(ctx, reservation); err != nil {
		uc.logger.Errorw("failed to reserve job number", "error", err)
		return nil, err
	}

	uc.logger.Infow("job number reserved", "job_id", reservation.ID())

	return &ReserveJobResult{
		JobID:     reservation.ID(),
		Status:    reservation.Status().String(),
		StartedAt: reservation.StartedAt(),
	}, nil
}
