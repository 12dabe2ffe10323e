package usecases

import (
	"context"
	"errors"
	"time"

	"repairbay/internal/domain/customer"
	"repairbay/internal/domain/job"
	"repairbay/internal/shared/db"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

// BookingNotifier sends the customer a confirmation after a submission is
// finalized. Delivery failures never fail the submission.
type BookingNotifier interface {
	SendBookingConfirmation(to, firstName string, jobID uint) error
}

type FinalizeSubmissionCommand struct {
	JobID          uint
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	Address        string
	DeviceType     string
	DeviceModel    string
	Issue          string
	DevicePassword *string
	DataRetention  bool
	HowHeard       string
}

type FinalizeSubmissionResult struct {
	JobID           uint
	CustomerID      uint
	CustomerCreated bool
	StartedAt       time.Time
}

// FinalizeSubmissionUseCase binds a completed intake form to a previously
// reserved job number. Customer resolution, the job update and the referral
// record all commit atomically; the referral record's primary key is what
// makes a second finalization of the same job fail.
type FinalizeSubmissionUseCase struct {
	jobRepo      job.Repository
	howHeardRepo job.HowHeardRepository
	resolver     *customer.Resolver
	txManager    *db.TransactionManager
	notifier     BookingNotifier
	logger       logger.Interface
}

func NewFinalizeSubmissionUseCase(
	jobRepo job.Repository,
	howHeardRepo job.HowHeardRepository,
	resolver *customer.Resolver,
	txManager *db.TransactionManager,
	notifier BookingNotifier,
	logger logger.Interface,
) *FinalizeSubmissionUseCase {
	return &FinalizeSubmissionUseCase{
		jobRepo:      jobRepo,
		howHeardRepo: howHeardRepo,
		resolver:     resolver,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *FinalizeSubmissionUseCase) Execute(ctx context.Context, cmd FinalizeSubmissionCommand) (*FinalizeSubmissionResult, error) {
	uc.logger.Infow("finalizing submission", "job_id", cmd.JobID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	now := time.Now()
	result := &FinalizeSubmissionResult{JobID: cmd.JobID}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		j, err := uc.jobRepo.FindByID(txCtx, cmd.JobID)
		if err != nil {
			if errors.Is(err, job.ErrJobNotFound) {
				return apperrors.NewNotFoundError("job not found")
			}
			return err
		}

		customerID, created, err := uc.resolver.Resolve(txCtx, customer.ResolveInput{
			FirstName: cmd.FirstName,
			LastName:  cmd.LastName,
			Phone:     cmd.Phone,
			Email:     cmd.Email,
			Address:   cmd.Address,
		}, now)
		if err != nil {
			return err
		}

		if err := j.Finalize(customerID, job.DeviceDetails{
			DeviceType:     cmd.DeviceType,
			DeviceModel:    cmd.DeviceModel,
			Issue:          cmd.Issue,
			DevicePassword: cmd.DevicePassword,
			DataRetention:  cmd.DataRetention,
		}, now); err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.jobRepo.Update(txCtx, j); err != nil {
			return err
		}

		referral, err := job.NewHowHeard(cmd.JobID, cmd.HowHeard, now)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.howHeardRepo.Save(txCtx, referral); err != nil {
			if errors.Is(err, job.ErrDuplicateHowHeard) {
				return apperrors.NewConflictError("submission already finalized for this job")
			}
			return err
		}

		result.CustomerID = customerID
		result.CustomerCreated = created
		result.StartedAt = j.StartedAt()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to finalize submission", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("submission finalized",
		"job_id", result.JobID,
		"customer_id", result.CustomerID,
		"customer_created", result.CustomerCreated)

	if uc.notifier != nil && cmd.Email != "" {
		if err := uc.notifier.SendBookingConfirmation(cmd.Email, cmd.FirstName, cmd.JobID); err != nil {
			uc.logger.Warnw("failed to send booking confirmation",
				"job_id", cmd.JobID, "error", err)
		}
	}

	return result, nil
}

func (uc *FinalizeSubmissionUseCase) validateCommand(cmd FinalizeSubmissionCommand) error {
	if cmd.JobID == 0 {
		return apperrors.NewValidationError("job ID is required")
	}
	if cmd.FirstName == "" {
		return apperrors.NewValidationError("first name is required")
	}
	if cmd.LastName == "" {
		return apperrors.NewValidationError("last name is required")
	}
	if cmd.Email == "" {
		return apperrors.NewValidationError("email is required")
	}
	if cmd.Issue == "" {
		return apperrors.NewValidationError("issue description is required")
	}
	if cmd.HowHeard == "" {
		return apperrors.NewValidationError("how heard source is required")
	}
	return nil
}
