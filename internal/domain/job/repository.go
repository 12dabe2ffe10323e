package job

import "context"

// Repository persists jobs. Implementations must honor a transaction carried
// in the context so that finalization and the retention sweep stay atomic.
type Repository interface {
	Save(ctx context.Context, j *Job) error
	Update(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id uint) (*Job, error)
	// Delete removes the job and all of its dependent records in one set-based
	// pass per table.
	Delete(ctx context.Context, id uint) error

	// ClearPasswordsByCustomerIDs scrubs the device password on every job
	// belonging to the given customers.
	ClearPasswordsByCustomerIDs(ctx context.Context, customerIDs []uint) error
	// DetachCustomers nulls the customer reference on every job belonging to
	// the given customers. The job rows themselves survive.
	DetachCustomers(ctx context.Context, customerIDs []uint) error
}

type HowHeardRepository interface {
	Save(ctx context.Context, h *HowHeard) error
	ExistsByJobID(ctx context.Context, jobID uint) (bool, error)
	FindByJobID(ctx context.Context, jobID uint) (*HowHeard, error)
	CountBySource(ctx context.Context) ([]SourceCount, error)
}

type CommunicationRepository interface {
	Save(ctx context.Context, c *Communication) error
	ListByJobID(ctx context.Context, jobID uint) ([]*Communication, error)
	// DeleteByCustomerIDs removes communications for every job owned by the
	// given customers in a single set-based delete.
	DeleteByCustomerIDs(ctx context.Context, customerIDs []uint) error
}

type CostRepository interface {
	Save(ctx context.Context, c *Cost) error
	ListByJobID(ctx context.Context, jobID uint) ([]*Cost, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o *Order) error
	ListByJobID(ctx context.Context, jobID uint) ([]*Order, error)
}

type PaymentRepository interface {
	Save(ctx context.Context, p *Payment) error
	ListByJobID(ctx context.Context, jobID uint) ([]*Payment, error)
}
