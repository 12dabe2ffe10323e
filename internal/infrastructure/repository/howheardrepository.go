package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"repairbay/internal/domain/job"
	"repairbay/internal/infrastructure/persistence/mappers"
	"repairbay/internal/infrastructure/persistence/models"
	db "repairbay/internal/shared/db"
	"repairbay/internal/shared/errors"
)

type HowHeardRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewHowHeardRepository(db *gorm.DB) *HowHeardRepository {
	return &HowHeardRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

// Save inserts the referral record keyed by job ID. The primary key doubles
// as the finalization marker, so a duplicate insert surfaces as
// ErrDuplicateHowHeard rather than a raw database error.
func (r *HowHeardRepository) Save(ctx context.Context, h *job.HowHeard) error {
	model := r.mapper.HowHeardToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return job.ErrDuplicateHowHeard
		}
		return fmt.Errorf("failed to save referral record: %w", err)
	}

	return nil
}

func (r *HowHeardRepository) ExistsByJobID(ctx context.Context, jobID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.HowHeardModel{}).Where("job_id = ?", jobID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check referral record: %w", err)
	}

	return count > 0, nil
}

func (r *HowHeardRepository) FindByJobID(ctx context.Context, jobID uint) (*job.HowHeard, error) {
	var model models.HowHeardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find referral record: %w", err)
	}

	return r.mapper.HowHeardToDomain(&model), nil
}

func (r *HowHeardRepository) CountBySource(ctx context.Context) ([]job.SourceCount, error) {
	var counts []job.SourceCount
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.HowHeardModel{}).
		Select("source, COUNT(*) AS count").
		Group("source").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count referral sources: %w", err)
	}

	return counts, nil
}
