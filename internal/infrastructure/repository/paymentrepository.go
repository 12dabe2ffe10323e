package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"repairbay/internal/domain/job"
	"repairbay/internal/infrastructure/persistence/mappers"
	"repairbay/internal/infrastructure/persistence/models"
	db "repairbay/internal/shared/db"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *PaymentRepository) Save(ctx context.Context, p *job.Payment) error {
	model := r.mapper.PaymentToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if p.ID() == 0 {
		p.SetID(model.ID)
	}

	return nil
}

func (r *PaymentRepository) ListByJobID(ctx context.Context, jobID uint) ([]*job.Payment, error) {
	var rows []models.PaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("job_id = ?", jobID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	result := make([]*job.Payment, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.PaymentToDomain(&rows[i]))
	}

	return result, nil
}
