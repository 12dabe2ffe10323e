package usecases

import (
	"context"
	"errors"

	"repairbay/internal/application/technician/dto"
	"repairbay/internal/domain/customer"
	"repairbay/internal/domain/job"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type GetJobUseCase struct {
	jobRepo      job.Repository
	customerRepo customer.Repository
	commRepo     job.CommunicationRepository
	costRepo     job.CostRepository
	orderRepo    job.OrderRepository
	paymentRepo  job.PaymentRepository
	howHeardRepo job.HowHeardRepository
	logger       logger.Interface
}

func NewGetJobUseCase(
	jobRepo job.Repository,
	customerRepo customer.Repository,
	commRepo job.CommunicationRepository,
	costRepo job.CostRepository,
	orderRepo job.OrderRepository,
	paymentRepo job.PaymentRepository,
	howHeardRepo job.HowHeardRepository,
	logger logger.Interface,
) *GetJobUseCase {
	return &GetJobUseCase{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		commRepo:     commRepo,
		costRepo:     costRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		howHeardRepo: howHeardRepo,
		logger:       logger,
	}
}

func (uc *GetJobUseCase) Execute(ctx context.Context, jobID uint) (*dto.JobDetailDTO, error) {
	j, err := uc.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, err
	}

	comms, err := uc.commRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	costs, err := uc.costRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	detail := &dto.JobDetailDTO{
		Job:            dto.ToJobDTO(j),
		Customer:       uc.loadCustomer(ctx, j),
		Communications: dto.ToCommunicationDTOs(comms),
		Costs:          dto.ToCostDTOs(costs),
		Orders:         dto.ToOrderDTOs(orders),
		Payments:       dto.ToPaymentDTOs(payments),
	}

	referral, err := uc.howHeardRepo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if referral != nil {
		detail.HowHeard = referral.Source()
	}

	return detail, nil
}

// loadCustomer fetches the contact card for an attached customer. Jobs
// detached by the retention sweep simply have no customer section.
func (uc *GetJobUseCase) loadCustomer(ctx context.Context, j *job.Job) *dto.CustomerDTO {
	if j.CustomerID() == nil {
		return nil
	}

	c, err := uc.customerRepo.FindByID(ctx, *j.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for job view",
			"job_id", j.ID(), "customer_id", *j.CustomerID(), "error", err)
		return nil
	}
	return dto.ToCustomerDTO(c)
}
