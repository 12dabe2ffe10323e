package usecases

import (
	"context"
	"time"

	"repairbay/internal/domain/customer"
	"repairbay/internal/shared/logger"
)

type ResolveCustomerCommand struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

type ResolveCustomerResult struct {
	CustomerID uint
	Created    bool
}

type ResolveCustomerUseCase struct {
	resolver *customer.Resolver
	logger   logger.Interface
}

func NewResolveCustomerUseCase(resolver *customer.Resolver, logger logger.Interface) *ResolveCustomerUseCase {
	return &ResolveCustomerUseCase{
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *ResolveCustomerUseCase) Execute(ctx context.Context, cmd ResolveCustomerCommand) (*ResolveCustomerResult, error) {
	customerID, created, err := uc.resolver.Resolve(ctx, customer.ResolveInput{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Phone:     cmd.Phone,
		Email:     cmd.Email,
		Address:   cmd.Address,
	}, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to resolve customer", "error", err)
		return nil, err
	}

	uc.logger.Infow("customer resolved", "customer_id", customerID, "created", created)

	return &ResolveCustomerResult{
		CustomerID: customerID,
		Created:    created,
	}, nil
}
