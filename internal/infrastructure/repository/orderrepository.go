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

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *job.Order) error {
	model := r.mapper.OrderToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if o.ID() == 0 {
		o.SetID(model.ID)
	}

	return nil
}

func (r *OrderRepository) ListByJobID(ctx context.Context, jobID uint) ([]*job.Order, error) {
	var rows []models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("job_id = ?", jobID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]*job.Order, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.OrderToDomain(&rows[i]))
	}

	return result, nil
}
