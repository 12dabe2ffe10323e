package usecases

import (
	"context"
	"errors"
	"time"

	"repairbay/internal/domain/job"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type AddCommunicationCommand struct {
	JobID uint
	Kind  string
	Note  string
}

type AddCommunicationResult struct {
	CommunicationID uint
	JobID           uint
	CreatedAt       time.Time
}

type AddCommunicationUseCase struct {
	jobRepo  job.Repository
	commRepo job.CommunicationRepository
	logger   logger.Interface
}

func NewAddCommunicationUseCase(
	jobRepo job.Repository,
	commRepo job.CommunicationRepository,
	logger logger.Interface,
) *AddCommunicationUseCase {
	return &AddCommunicationUseCase{
		jobRepo:  jobRepo,
		commRepo: commRepo,
		logger:   logger,
	}
}

func (uc *AddCommunicationUseCase) Execute(ctx context.Context, cmd AddCommunicationCommand) (*AddCommunicationResult, error) {
	if _, err := uc.jobRepo.FindByID(ctx, cmd.JobID); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	comm, err := job.NewCommunication(cmd.JobID, cmd.Kind, cmd.Note, time.Now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.commRepo.Save(ctx, comm); err != nil {
		uc.logger.Errorw("failed to save communication", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("communication added", "job_id", cmd.JobID, "communication_id", comm.ID())

	return &AddCommunicationResult{
		CommunicationID: comm.ID(),
		JobID:           cmd.JobID,
		CreatedAt:       comm.CreatedAt(),
	}, nil
}
