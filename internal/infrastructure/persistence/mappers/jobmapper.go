package mappers

import (
	"time"

	"repairbay/internal/domain/job"
	vo "repairbay/internal/domain/job/valueobjects"
	"repairbay/internal/infrastructure/persistence/models"
)

// JobMapper handles the conversion between Job domain entities (and their
// dependent records) and persistence models.
type JobMapper interface {
	ToModel(j *job.Job) *models.JobModel
	ToDomain(model *models.JobModel) (*job.Job, error)

	HowHeardToModel(h *job.HowHeard) *models.HowHeardModel
	HowHeardToDomain(model *models.HowHeardModel) *job.HowHeard

	CommunicationToModel(c *job.Communication) *models.CommunicationModel
	CommunicationToDomain(model *models.CommunicationModel) *job.Communication

	CostToModel(c *job.Cost) *models.CostModel
	CostToDomain(model *models.CostModel) *job.Cost

	OrderToModel(o *job.Order) *models.OrderModel
	OrderToDomain(model *models.OrderModel) *job.Order

	PaymentToModel(p *job.Payment) *models.PaymentModel
	PaymentToDomain(model *models.PaymentModel) *job.Payment
}

type JobMapperImpl struct{}

func NewJobMapper() JobMapper {
	return &JobMapperImpl{}
}

func (m *JobMapperImpl) ToModel(j *job.Job) *models.JobModel {
	model := &models.JobModel{
		ID:             j.ID(),
		CustomerID:     j.CustomerID(),
		DeviceType:     j.DeviceType(),
		DeviceModel:    j.DeviceModel(),
		Issue:          j.Issue(),
		DevicePassword: j.DevicePassword(),
		DataRetention:  j.DataRetention(),
		Status:         j.Status().String(),
		Notes:          j.Notes(),
		Technician:     j.Technician(),
		StartedAt:      j.StartedAt().UnixMilli(),
		CreatedAt:      j.CreatedAt().UnixMilli(),
		UpdatedAt:      j.UpdatedAt().UnixMilli(),
	}

	if j.EndedAt() != nil {
		ended := j.EndedAt().UnixMilli()
		model.EndedAt = &ended
	}

	return model
}

func (m *JobMapperImpl) ToDomain(model *models.JobModel) (*job.Job, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var endedAt *time.Time
	if model.EndedAt != nil {
		ended := time.UnixMilli(*model.EndedAt)
		endedAt = &ended
	}

	return job.ReconstructJob(
		model.ID,
		model.CustomerID,
		model.DeviceType,
		model.DeviceModel,
		model.Issue,
		model.DevicePassword,
		model.DataRetention,
		status,
		model.Notes,
		model.Technician,
		time.UnixMilli(model.StartedAt),
		endedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *JobMapperImpl) HowHeardToModel(h *job.HowHeard) *models.HowHeardModel {
	return &models.HowHeardModel{
		JobID:     h.JobID(),
		Source:    h.Source(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m *JobMapperImpl) HowHeardToDomain(model *models.HowHeardModel) *job.HowHeard {
	return job.ReconstructHowHeard(model.JobID, model.Source, time.UnixMilli(model.CreatedAt))
}

func (m *JobMapperImpl) CommunicationToModel(c *job.Communication) *models.CommunicationModel {
	return &models.CommunicationModel{
		ID:        c.ID(),
		JobID:     c.JobID(),
		Kind:      c.Kind(),
		Note:      c.Note(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *JobMapperImpl) CommunicationToDomain(model *models.CommunicationModel) *job.Communication {
	return job.ReconstructCommunication(model.ID, model.JobID, model.Kind, model.Note, time.UnixMilli(model.CreatedAt))
}

func (m *JobMapperImpl) CostToModel(c *job.Cost) *models.CostModel {
	return &models.CostModel{
		ID:          c.ID(),
		JobID:       c.JobID(),
		CostType:    c.CostType(),
		Amount:      c.Amount(),
		Description: c.Description(),
	}
}

func (m *JobMapperImpl) CostToDomain(model *models.CostModel) *job.Cost {
	return job.ReconstructCost(model.ID, model.JobID, model.CostType, model.Amount, model.Description)
}

func (m *JobMapperImpl) OrderToModel(o *job.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:          o.ID(),
		JobID:       o.JobID(),
		OrderDate:   o.OrderDate().UnixMilli(),
		Description: o.Description(),
		Quantity:    o.Quantity(),
		TotalCost:   o.TotalCost(),
	}
}

func (m *JobMapperImpl) OrderToDomain(model *models.OrderModel) *job.Order {
	return job.ReconstructOrder(model.ID, model.JobID, time.UnixMilli(model.OrderDate), model.Description, model.Quantity, model.TotalCost)
}

func (m *JobMapperImpl) PaymentToModel(p *job.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:          p.ID(),
		JobID:       p.JobID(),
		Amount:      p.Amount(),
		PaymentType: p.PaymentType(),
		PaidAt:      p.PaidAt().UnixMilli(),
	}
}

func (m *JobMapperImpl) PaymentToDomain(model *models.PaymentModel) *job.Payment {
	return job.ReconstructPayment(model.ID, model.JobID, model.Amount, model.PaymentType, time.UnixMilli(model.PaidAt))
}
