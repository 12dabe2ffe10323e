package job

import (
	"fmt"
	"time"
)

// Communication, Cost, Order and Payment are technician-facing records owned
// exclusively by one job. They are deleted when their job is deleted;
// communications are additionally removed when the owning customer is purged.

type Communication struct {
	id        uint
	jobID     uint
	kind      string
	note      string
	createdAt time.Time
}

func NewCommunication(jobID uint, kind, note string, now time.Time) (*Communication, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if note == "" {
		return nil, fmt.Errorf("note is required")
	}
	return &Communication{jobID: jobID, kind: kind, note: note, createdAt: now}, nil
}

func ReconstructCommunication(id, jobID uint, kind, note string, createdAt time.Time) *Communication {
	return &Communication{id: id, jobID: jobID, kind: kind, note: note, createdAt: createdAt}
}

func (c *Communication) SetID(id uint)        { c.id = id }
func (c *Communication) ID() uint             { return c.id }
func (c *Communication) JobID() uint          { return c.jobID }
func (c *Communication) Kind() string         { return c.kind }
func (c *Communication) Note() string         { return c.note }
func (c *Communication) CreatedAt() time.Time { return c.createdAt }

type Cost struct {
	id          uint
	jobID       uint
	costType    string
	amount      float64
	description string
}

func NewCost(jobID uint, costType string, amount float64, description string) (*Cost, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	return &Cost{jobID: jobID, costType: costType, amount: amount, description: description}, nil
}

func ReconstructCost(id, jobID uint, costType string, amount float64, description string) *Cost {
	return &Cost{id: id, jobID: jobID, costType: costType, amount: amount, description: description}
}

func (c *Cost) SetID(id uint)       { c.id = id }
func (c *Cost) ID() uint            { return c.id }
func (c *Cost) JobID() uint         { return c.jobID }
func (c *Cost) CostType() string    { return c.costType }
func (c *Cost) Amount() float64     { return c.amount }
func (c *Cost) Description() string { return c.description }

type Order struct {
	id          uint
	jobID       uint
	orderDate   time.Time
	description string
	quantity    int
	totalCost   float64
}

func NewOrder(jobID uint, description string, quantity int, totalCost float64, now time.Time) (*Order, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	return &Order{jobID: jobID, orderDate: now, description: description, quantity: quantity, totalCost: totalCost}, nil
}

func ReconstructOrder(id, jobID uint, orderDate time.Time, description string, quantity int, totalCost float64) *Order {
	return &Order{id: id, jobID: jobID, orderDate: orderDate, description: description, quantity: quantity, totalCost: totalCost}
}

func (o *Order) SetID(id uint)        { o.id = id }
func (o *Order) ID() uint             { return o.id }
func (o *Order) JobID() uint          { return o.jobID }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) Description() string  { return o.description }
func (o *Order) Quantity() int        { return o.quantity }
func (o *Order) TotalCost() float64   { return o.totalCost }

type Payment struct {
	id          uint
	jobID       uint
	amount      float64
	paymentType string
	paidAt      time.Time
}

func NewPayment(jobID uint, amount float64, paymentType string, paidAt time.Time) (*Payment, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	return &Payment{jobID: jobID, amount: amount, paymentType: paymentType, paidAt: paidAt}, nil
}

func ReconstructPayment(id, jobID uint, amount float64, paymentType string, paidAt time.Time) *Payment {
	return &Payment{id: id, jobID: jobID, amount: amount, paymentType: paymentType, paidAt: paidAt}
}

func (p *Payment) SetID(id uint)       { p.id = id }
func (p *Payment) ID() uint            { return p.id }
func (p *Payment) JobID() uint         { return p.jobID }
func (p *Payment) Amount() float64     { return p.amount }
func (p *Payment) PaymentType() string { return p.paymentType }
func (p *Payment) PaidAt() time.Time   { return p.paidAt }
