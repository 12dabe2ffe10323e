package dto

import (
	"time"

	"repairbay/internal/domain/customer"
	"repairbay/internal/domain/job"
)

type JobDTO struct {
	ID            uint       `json:"id"`
	CustomerID    *uint      `json:"customer_id"`
	DeviceType    string     `json:"device_type"`
	DeviceModel   string     `json:"device_model"`
	Issue         string     `json:"issue"`
	DataRetention bool       `json:"data_retention"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	Technician    string     `json:"technician"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CustomerDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

type CommunicationDTO struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type CostDTO struct {
	ID          uint    `json:"id"`
	CostType    string  `json:"cost_type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type OrderDTO struct {
	ID          uint      `json:"id"`
	OrderDate   time.Time `json:"order_date"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	TotalCost   float64   `json:"total_cost"`
}

type PaymentDTO struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"`
	PaidAt      time.Time `json:"paid_at"`
}

// JobDetailDTO is the full technician view: the job plus every dependent
// record. The device password is deliberately absent from all views.
type JobDetailDTO struct {
	Job            JobDTO             `json:"job"`
	Customer       *CustomerDTO       `json:"customer,omitempty"`
	Communications []CommunicationDTO `json:"communications"`
	Costs          []CostDTO          `json:"costs"`
	Orders         []OrderDTO         `json:"orders"`
	Payments       []PaymentDTO       `json:"payments"`
	HowHeard       string             `json:"how_heard,omitempty"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		Address:   c.Address(),
	}
}

func ToJobDTO(j *job.Job) JobDTO {
	return JobDTO{
		ID:            j.ID(),
		CustomerID:    j.CustomerID(),
		DeviceType:    j.DeviceType(),
		DeviceModel:   j.DeviceModel(),
		Issue:         j.Issue(),
		DataRetention: j.DataRetention(),
		Status:        j.Status().String(),
		Notes:         j.Notes(),
		Technician:    j.Technician(),
		StartedAt:     j.StartedAt(),
		EndedAt:       j.EndedAt(),
		CreatedAt:     j.CreatedAt(),
		UpdatedAt:     j.UpdatedAt(),
	}
}

func ToCommunicationDTOs(comms []*job.Communication) []CommunicationDTO {
	result := make([]CommunicationDTO, 0, len(comms))
	for _, c := range comms {
		result = append(result, CommunicationDTO{
			ID:        c.ID(),
			Kind:      c.Kind(),
			Note:      c.Note(),
			CreatedAt: c.CreatedAt(),
		})
	}
	return result
}

func ToCostDTOs(costs []*job.Cost) []CostDTO {
	result := make([]CostDTO, 0, len(costs))
	for _, c := range costs {
		result = append(result, CostDTO{
			ID:          c.ID(),
			CostType:    c.CostType(),
			Amount:      c.Amount(),
			Description: c.Description(),
		})
	}
	return result
}

func ToOrderDTOs(orders []*job.Order) []OrderDTO {
	result := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderDTO{
			ID:          o.ID(),
			OrderDate:   o.OrderDate(),
			Description: o.Description(),
			Quantity:    o.Quantity(),
			TotalCost:   o.TotalCost(),
		})
	}
	return result
}

func ToPaymentDTOs(payments []*job.Payment) []PaymentDTO {
	result := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		result = append(result, PaymentDTO{
			ID:          p.ID(),
			Amount:      p.Amount(),
			PaymentType: p.PaymentType(),
			PaidAt:      p.PaidAt(),
		})
	}
	return result
}
