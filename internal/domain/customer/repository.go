package customer

import (
	"context"
	"time"
)

// Repository persists customers. Implementations must honor a transaction
// carried in the context.
type Repository interface {
	Save(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	// FindByIdentity returns the oldest customer exactly matching the
	// (firstName, lastName, email) identity key, or nil when none matches.
	FindByIdentity(ctx context.Context, firstName, lastName, email string) (*Customer, error)

	// FindExpiredIDs returns customers whose most recent job started before
	// the cutoff, together with customers that have no jobs at all.
	FindExpiredIDs(ctx context.Context, cutoff time.Time) ([]uint, error)
	DeleteByIDs(ctx context.Context, ids []uint) error

	// CompactIdentitySequence resets the next customer identifier to
	// max(existing)+1, or 1 when the table is empty.
	CompactIdentitySequence(ctx context.Context) error
}
