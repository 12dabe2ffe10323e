package customer

import (
	"fmt"
	"time"
)

// Customer is an identity record. The store enforces no uniqueness on any of
// these fields; the resolver treats (first name, last name, email) as a soft
// identity key.
type Customer struct {
	id        uint
	firstName string
	lastName  string
	phone     string
	email     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(firstName, lastName, phone, email, address string, now time.Time) (*Customer, error) {
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &Customer{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	firstName, lastName, phone, email, address string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}

	return &Customer{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// MatchesIdentity reports an exact, case-sensitive match on the soft identity
// key. The comparison happens here because common database collations fold
// case and would widen the match.
func (c *Customer) MatchesIdentity(firstName, lastName, email string) bool {
	return c.firstName == firstName && c.lastName == lastName && c.email == email
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
