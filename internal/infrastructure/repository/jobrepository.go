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

type JobRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{
		db:     db,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *JobRepository) Save(ctx context.Context, j *job.Job) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	if j.ID() == 0 {
		if err := j.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

// Update writes every column, including NULLs. Struct-based gorm updates skip
// zero values, which would silently keep a device password that was just
// cleared.
func (r *JobRepository) Update(ctx context.Context, j *job.Job) error {
	model := r.mapper.ToModel(j)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uint) (*job.Job, error) {
	var model models.JobModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, job.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Delete removes the job and every dependent record. The schema carries no
// foreign keys, so the cascade is explicit and set-based.
func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("job_id = ?", id).Delete(&models.CommunicationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job communications: %w", err)
	}
	if err := tx.Where("job_id = ?", id).Delete(&models.CostModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job costs: %w", err)
	}
	if err := tx.Where("job_id = ?", id).Delete(&models.OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job orders: %w", err)
	}
	if err := tx.Where("job_id = ?", id).Delete(&models.PaymentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job payments: %w", err)
	}
	if err := tx.Where("job_id = ?", id).Delete(&models.HowHeardModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job referral record: %w", err)
	}

	result := tx.Delete(&models.JobModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

func (r *JobRepository) ClearPasswordsByCustomerIDs(ctx context.Context, customerIDs []uint) error {
	if len(customerIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.JobModel{}).
		Where("customer_id IN ?", customerIDs).
		Update("device_password", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear device passwords: %w", err)
	}

	return nil
}

func (r *JobRepository) DetachCustomers(ctx context.Context, customerIDs []uint) error {
	if len(customerIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.JobModel{}).
		Where("customer_id IN ?", customerIDs).
		Update("customer_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach customers from jobs: %w", err)
	}

	return nil
}
