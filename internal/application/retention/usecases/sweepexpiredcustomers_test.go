package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"repairbay/internal/infrastructure/persistence/models"
	"repairbay/internal/infrastructure/repository"
	"repairbay/internal/shared/db"
	"repairbay/internal/shared/logger"
)

const retentionWindow = 365 * 24 * time.Hour

func setupSweep(t *testing.T) (*gorm.DB, *SweepExpiredCustomersUseCase) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.CustomerModel{},
		&models.JobModel{},
		&models.CommunicationModel{},
		&models.CostModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.HowHeardModel{},
	)
	require.NoError(t, err)

	uc := NewSweepExpiredCustomersUseCase(
		repository.NewCustomerRepository(database),
		repository.NewJobRepository(database),
		repository.NewCommunicationRepository(database),
		db.NewTransactionManager(database),
		retentionWindow,
		logger.NewLogger(),
	)
	return database, uc
}

func insertCustomer(t *testing.T, database *gorm.DB, firstName string) uint {
	model := &models.CustomerModel{
		FirstName: firstName,
		LastName:  "Doe",
		Email:     firstName + "@example.com",
	}
	require.NoError(t, database.Create(model).Error)
	return model.ID
}

func insertJobWithPassword(t *testing.T, database *gorm.DB, customerID uint, age time.Duration) uint {
	password := "1234"
	model := &models.JobModel{
		CustomerID:     &customerID,
		Issue:          "Cracked screen",
		DevicePassword: &password,
		Status:         "completed",
		StartedAt:      time.Now().Add(-age).UnixMilli(),
	}
	require.NoError(t, database.Create(model).Error)
	return model.ID
}

func insertNote(t *testing.T, database *gorm.DB, jobID uint) {
	require.NoError(t, database.Create(&models.CommunicationModel{
		JobID: jobID,
		Kind:  "call",
		Note:  "left voicemail",
	}).Error)
}

func TestSweepExpiredCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("purges customers past the retention window", func(t *testing.T) {
		database, uc := setupSweep(t)

		expiredID := insertCustomer(t, database, "old")
		expiredJob := insertJobWithPassword(t, database, expiredID, 400*24*time.Hour)
		insertNote(t, database, expiredJob)

		activeID := insertCustomer(t, database, "active")
		activeJob := insertJobWithPassword(t, database, activeID, 10*24*time.Hour)
		insertNote(t, database, activeJob)

		purged, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, purged)

		var customers []models.CustomerModel
		require.NoError(t, database.Find(&customers).Error)
		require.Len(t, customers, 1)
		assert.Equal(t, activeID, customers[0].ID)

		// The job row survives, anonymized. The password is gone and the
		// customer reference is nulled.
		var job models.JobModel
		require.NoError(t, database.First(&job, expiredJob).Error)
		assert.Nil(t, job.CustomerID)
		assert.Nil(t, job.DevicePassword)
		assert.Equal(t, "Cracked screen", job.Issue)

		var notes []models.CommunicationModel
		require.NoError(t, database.Where("job_id = ?", expiredJob).Find(&notes).Error)
		assert.Empty(t, notes)

		// The active customer's job and notes are untouched.
		job = models.JobModel{}
		require.NoError(t, database.First(&job, activeJob).Error)
		require.NotNil(t, job.CustomerID)
		assert.Equal(t, activeID, *job.CustomerID)
		assert.NotNil(t, job.DevicePassword)
		require.NoError(t, database.Where("job_id = ?", activeJob).Find(&notes).Error)
		assert.Len(t, notes, 1)
	})

	t.Run("purges customers holding no jobs at all", func(t *testing.T) {
		database, uc := setupSweep(t)
		insertCustomer(t, database, "ghost")

		purged, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, purged)
	})

	t.Run("one recent job keeps a customer with older ones", func(t *testing.T) {
		database, uc := setupSweep(t)

		id := insertCustomer(t, database, "mixed")
		insertJobWithPassword(t, database, id, 400*24*time.Hour)
		insertJobWithPassword(t, database, id, 5*24*time.Hour)

		purged, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, purged)

		var count int64
		require.NoError(t, database.Model(&models.CustomerModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("second run finds nothing", func(t *testing.T) {
		database, uc := setupSweep(t)

		id := insertCustomer(t, database, "old")
		insertJobWithPassword(t, database, id, 400*24*time.Hour)

		purged, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, purged)

		purged, err = uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, purged)
	})

	t.Run("freed identifiers are reused after the sweep", func(t *testing.T) {
		database, uc := setupSweep(t)

		keptID := insertCustomer(t, database, "kept")
		insertJobWithPassword(t, database, keptID, 10*24*time.Hour)
		insertCustomer(t, database, "gone1")
		insertCustomer(t, database, "gone2")

		purged, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, purged)

		next := &models.CustomerModel{FirstName: "new", LastName: "Doe", Email: "new@example.com"}
		require.NoError(t, database.Create(next).Error)
		assert.Equal(t, keptID+1, next.ID)
	})
}
