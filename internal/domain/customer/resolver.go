package customer

import (
	"context"
	"fmt"
	"time"
)

// ResolveInput carries the identity and contact fields from a submission.
type ResolveInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

// Resolver deduplicates incoming submissions against existing customers.
//
// The policy is an exact, case-sensitive match on (first name, last name,
// email). On a hit the stored phone and address are NOT refreshed; stale
// contact data is the accepted price of idempotence. Two concurrent calls
// with identical identity fields may legitimately create two rows — the store
// enforces no uniqueness on these columns, and duplicate legal names are a
// fact of life. Do not "fix" this with a unique constraint.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the identifier of the matching customer, inserting a new
// row when no exact match exists. The second return value reports whether a
// row was created.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput, now time.Time) (uint, bool, error) {
	existing, err := r.repo.FindByIdentity(ctx, in.FirstName, in.LastName, in.Email)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if existing != nil {
		return existing.ID(), false, nil
	}

	c, err := NewCustomer(in.FirstName, in.LastName, in.Phone, in.Email, in.Address, now)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if err := r.repo.Save(ctx, c); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}

	return c.ID(), true, nil
}
