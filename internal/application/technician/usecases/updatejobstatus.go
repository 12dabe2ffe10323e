package usecases

import (
	"context"
	"errors"
	"time"

	"repairbay/internal/domain/customer"
	"repairbay/internal/domain/job"
	vo "repairbay/internal/domain/job/valueobjects"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

// PickupNotifier tells the customer their device is ready for collection.
// Delivery failures never fail the status update.
type PickupNotifier interface {
	SendPickupReady(to, firstName string, jobID uint, completedAt time.Time) error
}

type UpdateJobStatusCommand struct {
	JobID      uint
	Status     string
	Notes      *string
	Technician *string
}

type UpdateJobStatusResult struct {
	JobID   uint
	Status  string
	EndedAt *time.Time
}

type UpdateJobStatusUseCase struct {
	jobRepo      job.Repository
	customerRepo customer.Repository
	notifier     PickupNotifier
	logger       logger.Interface
}

func NewUpdateJobStatusUseCase(
	jobRepo job.Repository,
	customerRepo customer.Repository,
	notifier PickupNotifier,
	logger logger.Interface,
) *UpdateJobStatusUseCase {
	return &UpdateJobStatusUseCase{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *UpdateJobStatusUseCase) Execute(ctx context.Context, cmd UpdateJobStatusCommand) (*UpdateJobStatusResult, error) {
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	j, err := uc.jobRepo.FindByID(ctx, cmd.JobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	now := time.Now()
	wasCompleted := j.Status() == vo.StatusCompleted
	if err := j.SetStatus(status, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Notes != nil {
		j.SetNotes(*cmd.Notes, now)
	}
	if cmd.Technician != nil {
		j.AssignTechnician(*cmd.Technician, now)
	}

	if err := uc.jobRepo.Update(ctx, j); err != nil {
		uc.logger.Errorw("failed to update job status", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("job status updated",
		"job_id", cmd.JobID, "status", status.String())

	if status == vo.StatusCompleted && !wasCompleted {
		uc.notifyPickupReady(ctx, j, now)
	}

	return &UpdateJobStatusResult{
		JobID:   j.ID(),
		Status:  j.Status().String(),
		EndedAt: j.EndedAt(),
	}, nil
}

func (uc *UpdateJobStatusUseCase) notifyPickupReady(ctx context.Context, j *job.Job, completedAt time.Time) {
	if uc.notifier == nil || j.CustomerID() == nil {
		return
	}

	c, err := uc.customerRepo.FindByID(ctx, *j.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for pickup notification",
			"job_id", j.ID(), "error", err)
		return
	}

	if err := uc.notifier.SendPickupReady(c.Email(), c.FirstName(), j.ID(), completedAt); err != nil {
		uc.logger.Warnw("failed to send pickup notification",
			"job_id", j.ID(), "error", err)
	}
}
