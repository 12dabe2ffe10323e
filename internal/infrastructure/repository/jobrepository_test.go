package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairbay/internal/domain/job"
	"repairbay/internal/infrastructure/persistence/models"
)

func reserveTestJob(t *testing.T, repo *JobRepository) *job.Job {
	j := job.NewReservation(time.Now())
	require.NoError(t, repo.Save(context.Background(), j))
	return j
}

func TestJobRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	t.Run("reservations get sequential identifiers", func(t *testing.T) {
		j1 := reserveTestJob(t, repo)
		j2 := reserveTestJob(t, repo)
		assert.Equal(t, j1.ID()+1, j2.ID())
	})

	t.Run("round trips a reservation", func(t *testing.T) {
		j := reserveTestJob(t, repo)

		found, err := repo.FindByID(ctx, j.ID())
		require.NoError(t, err)
		assert.True(t, found.IsReserved())
		assert.Equal(t, j.Status(), found.Status())
	})

	t.Run("missing job returns sentinel", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, job.ErrJobNotFound)
	})
}

func TestJobRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	t.Run("persists finalization", func(t *testing.T) {
		j := reserveTestJob(t, repo)

		password := "4321"
		require.NoError(t, j.Finalize(3, job.DeviceDetails{
			DeviceType:     "Phone",
			Issue:          "Cracked screen",
			DevicePassword: &password,
		}, time.Now()))
		require.NoError(t, repo.Update(ctx, j))

		found, err := repo.FindByID(ctx, j.ID())
		require.NoError(t, err)
		require.NotNil(t, found.CustomerID())
		assert.Equal(t, uint(3), *found.CustomerID())
		require.NotNil(t, found.DevicePassword())
		assert.Equal(t, "4321", *found.DevicePassword())
	})

	t.Run("persists a cleared device password", func(t *testing.T) {
		j := reserveTestJob(t, repo)
		password := "1111"
		require.NoError(t, j.Finalize(4, job.DeviceDetails{
			Issue:          "Water damage",
			DevicePassword: &password,
		}, time.Now()))
		require.NoError(t, repo.Update(ctx, j))

		j.ClearDevicePassword(time.Now())
		require.NoError(t, repo.Update(ctx, j))

		found, err := repo.FindByID(ctx, j.ID())
		require.NoError(t, err)
		assert.Nil(t, found.DevicePassword())
	})
}

func TestJobRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	t.Run("removes job and dependent records", func(t *testing.T) {
		j := reserveTestJob(t, repo)

		require.NoError(t, db.Create(&models.CommunicationModel{JobID: j.ID(), Note: "called customer"}).Error)
		require.NoError(t, db.Create(&models.CostModel{JobID: j.ID(), Amount: 20}).Error)
		require.NoError(t, db.Create(&models.OrderModel{JobID: j.ID(), Description: "screen", Quantity: 1, OrderDate: time.Now().UnixMilli()}).Error)
		require.NoError(t, db.Create(&models.PaymentModel{JobID: j.ID(), Amount: 50, PaidAt: time.Now().UnixMilli()}).Error)
		require.NoError(t, db.Create(&models.HowHeardModel{JobID: j.ID(), Source: "Word of mouth"}).Error)

		require.NoError(t, repo.Delete(ctx, j.ID()))

		_, err := repo.FindByID(ctx, j.ID())
		assert.ErrorIs(t, err, job.ErrJobNotFound)

		for _, model := range []interface{}{
			&models.CommunicationModel{}, &models.CostModel{},
			&models.OrderModel{}, &models.PaymentModel{}, &models.HowHeardModel{},
		} {
			var count int64
			require.NoError(t, db.Model(model).Where("job_id = ?", j.ID()).Count(&count).Error)
			assert.Zero(t, count)
		}
	})

	t.Run("missing job returns sentinel", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.ErrorIs(t, err, job.ErrJobNotFound)
	})
}

func TestJobRepository_RetentionHelpers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	password := "s3cret"
	customerID := uint(11)
	model := &models.JobModel{
		CustomerID:     &customerID,
		DevicePassword: &password,
		Status:         "completed",
		StartedAt:      time.Now().UnixMilli(),
	}
	require.NoError(t, db.Create(model).Error)

	otherCustomer := uint(12)
	otherPassword := "keepme"
	other := &models.JobModel{
		CustomerID:     &otherCustomer,
		DevicePassword: &otherPassword,
		Status:         "in_progress",
		StartedAt:      time.Now().UnixMilli(),
	}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, repo.ClearPasswordsByCustomerIDs(ctx, []uint{customerID}))
	require.NoError(t, repo.DetachCustomers(ctx, []uint{customerID}))

	var reloaded models.JobModel
	require.NoError(t, db.First(&reloaded, model.ID).Error)
	assert.Nil(t, reloaded.DevicePassword)
	assert.Nil(t, reloaded.CustomerID)

	var untouched models.JobModel
	require.NoError(t, db.First(&untouched, other.ID).Error)
	require.NotNil(t, untouched.DevicePassword)
	assert.Equal(t, "keepme", *untouched.DevicePassword)
	require.NotNil(t, untouched.CustomerID)

	t.Run("empty id lists are no-ops", func(t *testing.T) {
		assert.NoError(t, repo.ClearPasswordsByCustomerIDs(ctx, nil))
		assert.NoError(t, repo.DetachCustomers(ctx, nil))
	})
}

func TestHowHeardRepository(t *testing.T) {
	db := setupTestDB(t)
	jobRepo := NewJobRepository(db)
	repo := NewHowHeardRepository(db)
	ctx := context.Background()

	t.Run("duplicate insert reports conflict", func(t *testing.T) {
		j := reserveTestJob(t, jobRepo)

		h, err := job.NewHowHeard(j.ID(), "Google", time.Now())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, h))

		again, err := job.NewHowHeard(j.ID(), "Flyer", time.Now())
		require.NoError(t, err)
		err = repo.Save(ctx, again)
		assert.ErrorIs(t, err, job.ErrDuplicateHowHeard)
	})

	t.Run("exists and find by job", func(t *testing.T) {
		j := reserveTestJob(t, jobRepo)

		exists, err := repo.ExistsByJobID(ctx, j.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		h, err := job.NewHowHeard(j.ID(), "Repeat customer", time.Now())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, h))

		exists, err = repo.ExistsByJobID(ctx, j.ID())
		require.NoError(t, err)
		assert.True(t, exists)

		found, err := repo.FindByJobID(ctx, j.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Repeat customer", found.Source())
	})

	t.Run("counts by source", func(t *testing.T) {
		db := setupTestDB(t)
		jobRepo := NewJobRepository(db)
		repo := NewHowHeardRepository(db)

		sources := []string{"Google", "Google", "Google", "Flyer", "Word of mouth", "Word of mouth"}
		for _, source := range sources {
			j := reserveTestJob(t, jobRepo)
			h, err := job.NewHowHeard(j.ID(), source, time.Now())
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, h))
		}

		counts, err := repo.CountBySource(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 3)
		assert.Equal(t, "Google", counts[0].Source)
		assert.Equal(t, int64(3), counts[0].Count)
	})
}

func TestCommunicationRepository_DeleteByCustomerIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunicationRepository(db)
	ctx := context.Background()

	purgedCustomer := uint(21)
	keptCustomer := uint(22)

	purgedJob := &models.JobModel{CustomerID: &purgedCustomer, Status: "completed", StartedAt: time.Now().UnixMilli()}
	keptJob := &models.JobModel{CustomerID: &keptCustomer, Status: "completed", StartedAt: time.Now().UnixMilli()}
	require.NoError(t, db.Create(purgedJob).Error)
	require.NoError(t, db.Create(keptJob).Error)

	require.NoError(t, db.Create(&models.CommunicationModel{JobID: purgedJob.ID, Note: "quote accepted"}).Error)
	require.NoError(t, db.Create(&models.CommunicationModel{JobID: purgedJob.ID, Note: "ready for pickup"}).Error)
	require.NoError(t, db.Create(&models.CommunicationModel{JobID: keptJob.ID, Note: "left voicemail"}).Error)

	require.NoError(t, repo.DeleteByCustomerIDs(ctx, []uint{purgedCustomer}))

	var purgedCount, keptCount int64
	require.NoError(t, db.Model(&models.CommunicationModel{}).Where("job_id = ?", purgedJob.ID).Count(&purgedCount).Error)
	require.NoError(t, db.Model(&models.CommunicationModel{}).Where("job_id = ?", keptJob.ID).Count(&keptCount).Error)
	assert.Zero(t, purgedCount)
	assert.Equal(t, int64(1), keptCount)
}
