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

type CommunicationRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *CommunicationRepository) Save(ctx context.Context, c *job.Communication) error {
	model := r.mapper.CommunicationToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save communication: %w", err)
	}

	if c.ID() == 0 {
		c.SetID(model.ID)
	}

	return nil
}

func (r *CommunicationRepository) ListByJobID(ctx context.Context, jobID uint) ([]*job.Communication, error) {
	var rows []models.CommunicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("job_id = ?", jobID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}

	result := make([]*job.Communication, 0, len(rows))
	for i := range rows {
		result = append(result, r.mapper.CommunicationToDomain(&rows[i]))
	}

	return result, nil
}

// DeleteByCustomerIDs removes the message history tied to the given
// customers through their jobs, in a single set-based statement.
func (r *CommunicationRepository) DeleteByCustomerIDs(ctx context.Context, customerIDs []uint) error {
	if len(customerIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.
		Where("job_id IN (?)", tx.Model(&models.JobModel{}).Select("id").Where("customer_id IN ?", customerIDs)).
		Delete(&models.CommunicationModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete communications: %w", err)
	}

	return nil
}
