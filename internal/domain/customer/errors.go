package customer

import "errors"

var (
	// ErrCustomerNotFound is returned when the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrResolutionFailed wraps a storage failure during the resolve-or-insert step.
	ErrResolutionFailed = errors.New("customer resolution failed")
)
