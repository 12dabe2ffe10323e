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

type CostRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *CostRepository) Save(ctx context.Context, c *job.Cost) error {
	model := r.mapper.CostToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save cost: %w", err)
	}

	if c.ID() == 0 {
		c.SetID(model.ID)
	}

	return nil
}

func (r *CostRepository) ListByJobID(ctx context.Context, jobID uint) ([]*job.Cost, error) {
	var rows []models.CostModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("job_id = ?", jobID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}

	result := make([]*job.Cost, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.CostToDomain(&rows[i]))
	}

	return result, nil
}
