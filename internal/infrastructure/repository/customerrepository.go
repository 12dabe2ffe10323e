package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"repairbay/internal/domain/customer"
	"repairbay/internal/infrastructure/persistence/mappers"
	"repairbay/internal/infrastructure/persistence/models"
	db "repairbay/internal/shared/db"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	if c.ID() == 0 {
		if err := c.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByIdentity matches on the (first name, last name, email) triple. The
// SQL equality narrows the candidate set, but MySQL's default collation folds
// case, so the exact case-sensitive comparison is applied in memory.
func (r *CustomerRepository) FindByIdentity(ctx context.Context, firstName, lastName, email string) (*customer.Customer, error) {
	var candidates []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("first_name = ? AND last_name = ? AND email = ?", firstName, lastName, email).
		Order("id ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query customers by identity: %w", err)
	}

	for i := range candidates {
		c, err := r.mapper.ToDomain(&candidates[i])
		if err != nil {
			return nil, err
		}
		if c.MatchesIdentity(firstName, lastName, email) {
			return c, nil
		}
	}

	return nil, nil
}

// FindExpiredIDs selects customers whose most recent job started before the
// cutoff, plus customers with no jobs at all. MAX over an empty join is NULL
// and NULL comparisons are not true, so the zero-jobs case needs its own
// branch.
func (r *CustomerRepository) FindExpiredIDs(ctx context.Context, cutoff time.Time) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.CustomerModel{}).
		Select("customers.id").
		Joins("LEFT JOIN jobs ON jobs.customer_id = customers.id").
		Group("customers.id").
		Having("COUNT(jobs.id) = 0 OR MAX(jobs.started_at) < ?", cutoff.UnixMilli()).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select expired customers: %w", err)
	}

	return ids, nil
}

func (r *CustomerRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.CustomerModel{}, ids).Error; err != nil {
		return fmt.Errorf("failed to delete customers: %w", err)
	}

	return nil
}

// CompactIdentitySequence resets the customer identifier allocator so the
// next insert reuses the lowest free value: max(id)+1, or 1 when the table is
// empty. On MySQL/MariaDB this is an ALTER TABLE, which is DDL and commits
// implicitly; callers run it after the purge transaction has committed.
func (r *CustomerRepository) CompactIdentitySequence(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxID *uint
	if err := tx.Model(&models.CustomerModel{}).Select("MAX(id)").Scan(&maxID).Error; err != nil {
		return fmt.Errorf("failed to read max customer id: %w", err)
	}

	var last uint
	if maxID != nil {
		last = *maxID
	}

	switch tx.Dialector.Name() {
	case "mysql":
		// AUTO_INCREMENT does not accept bind parameters.
		stmt := fmt.Sprintf("ALTER TABLE customers AUTO_INCREMENT = %d", last+1)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to compact customer sequence: %w", err)
		}
	case "sqlite", "sqlite3":
		// sqlite_sequence holds the last allocated value per AUTOINCREMENT table.
		err := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = ?", last, "customers").Error
		if err != nil {
			return fmt.Errorf("failed to compact customer sequence: %w", err)
		}
	default:
		return fmt.Errorf("sequence compaction not supported for dialect %s", tx.Dialector.Name())
	}

	return nil
}
