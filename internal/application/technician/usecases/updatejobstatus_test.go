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
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type pickupRecorder struct {
	sent []uint
}

func (r *pickupRecorder) SendPickupReady(to, firstName string, jobID uint, completedAt time.Time) error {
	r.sent = append(r.sent, jobID)
	return nil
}

type technicianFixture struct {
	db       *gorm.DB
	pickup   *pickupRecorder
	update   *UpdateJobStatusUseCase
	getJob   *GetJobUseCase
	delete   *DeleteJobUseCase
	addComm  *AddCommunicationUseCase
	addCost  *AddCostUseCase
	addOrder *AddOrderUseCase
	addPay   *AddPaymentUseCase
	stats    *HowHeardStatsUseCase
}

func setupTechnician(t *testing.T) *technicianFixture {
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

	jobRepo := repository.NewJobRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	commRepo := repository.NewCommunicationRepository(database)
	costRepo := repository.NewCostRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	howHeardRepo := repository.NewHowHeardRepository(database)
	txManager := db.NewTransactionManager(database)
	pickup := &pickupRecorder{}
	log := logger.NewLogger()

	return &technicianFixture{
		db:       database,
		pickup:   pickup,
		update:   NewUpdateJobStatusUseCase(jobRepo, customerRepo, pickup, log),
		getJob:   NewGetJobUseCase(jobRepo, customerRepo, commRepo, costRepo, orderRepo, paymentRepo, howHeardRepo, log),
		delete:   NewDeleteJobUseCase(jobRepo, txManager, log),
		addComm:  NewAddCommunicationUseCase(jobRepo, commRepo, log),
		addCost:  NewAddCostUseCase(jobRepo, costRepo, log),
		addOrder: NewAddOrderUseCase(jobRepo, orderRepo, log),
		addPay:   NewAddPaymentUseCase(jobRepo, paymentRepo, log),
		stats:    NewHowHeardStatsUseCase(howHeardRepo, log),
	}
}

func (f *technicianFixture) insertJob(t *testing.T, customerID *uint) uint {
	model := &models.JobModel{
		CustomerID: customerID,
		Issue:      "Battery swollen",
		Status:     "in_progress",
		StartedAt:  time.Now().UnixMilli(),
	}
	require.NoError(t, f.db.Create(model).Error)
	return model.ID
}

func (f *technicianFixture) insertCustomer(t *testing.T) uint {
	model := &models.CustomerModel{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
	require.NoError(t, f.db.Create(model).Error)
	return model.ID
}

func TestUpdateJobStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("closing a job stamps the end time", func(t *testing.T) {
		f := setupTechnician(t)
		jobID := f.insertJob(t, nil)

		result, err := f.update.Execute(ctx, UpdateJobStatusCommand{
			JobID:  jobID,
			Status: "picked_up",
		})
		require.NoError(t, err)
		assert.Equal(t, "picked_up", result.Status)
		assert.NotNil(t, result.EndedAt)
	})

	t.Run("reopening clears the end time", func(t *testing.T) {
		f := setupTechnician(t)
		jobID := f.insertJob(t, nil)

		_, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "cancelled"})
		require.NoError(t, err)

		result, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "in_progress"})
		require.NoError(t, err)
		assert.Nil(t, result.EndedAt)
	})

	t.Run("completion notifies the customer once", func(t *testing.T) {
		f := setupTechnician(t)
		customerID := f.insertCustomer(t)
		jobID := f.insertJob(t, &customerID)

		_, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, []uint{jobID}, f.pickup.sent)

		notes := "customer called back"
		_, err = f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "completed", Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, []uint{jobID}, f.pickup.sent)
	})

	t.Run("completing a detached job sends nothing", func(t *testing.T) {
		f := setupTechnician(t)
		jobID := f.insertJob(t, nil)

		_, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "completed"})
		require.NoError(t, err)
		assert.Empty(t, f.pickup.sent)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		f := setupTechnician(t)
		jobID := f.insertJob(t, nil)

		_, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: jobID, Status: "shipped"})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		f := setupTechnician(t)

		_, err := f.update.Execute(ctx, UpdateJobStatusCommand{JobID: 42, Status: "completed"})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestJobRecords(t *testing.T) {
	ctx := context.Background()
	f := setupTechnician(t)
	jobID := f.insertJob(t, nil)

	_, err := f.addComm.Execute(ctx, AddCommunicationCommand{JobID: jobID, Kind: "call", Note: "left voicemail"})
	require.NoError(t, err)
	_, err = f.addCost.Execute(ctx, AddCostCommand{JobID: jobID, CostType: "labor", Amount: 45, Description: "diagnostics"})
	require.NoError(t, err)
	_, err = f.addOrder.Execute(ctx, AddOrderCommand{JobID: jobID, Description: "replacement battery", Quantity: 1, TotalCost: 30})
	require.NoError(t, err)
	_, err = f.addPay.Execute(ctx, AddPaymentCommand{JobID: jobID, Amount: 75, PaymentType: "card"})
	require.NoError(t, err)

	detail, err := f.getJob.Execute(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, detail.Job.ID)
	assert.Nil(t, detail.Customer)
	assert.Len(t, detail.Communications, 1)
	assert.Len(t, detail.Costs, 1)
	assert.Len(t, detail.Orders, 1)
	assert.Len(t, detail.Payments, 1)

	t.Run("attached customer contact appears in the view", func(t *testing.T) {
		customerID := f.insertCustomer(t)
		attachedJob := f.insertJob(t, &customerID)

		detail, err := f.getJob.Execute(ctx, attachedJob)
		require.NoError(t, err)
		require.NotNil(t, detail.Customer)
		assert.Equal(t, "jane@example.com", detail.Customer.Email)
	})

	t.Run("records against a missing job are rejected", func(t *testing.T) {
		_, err := f.addComm.Execute(ctx, AddCommunicationCommand{JobID: 9999, Kind: "call", Note: "x"})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	f := setupTechnician(t)
	jobID := f.insertJob(t, nil)

	_, err := f.addComm.Execute(ctx, AddCommunicationCommand{JobID: jobID, Kind: "call", Note: "left voicemail"})
	require.NoError(t, err)

	require.NoError(t, f.delete.Execute(ctx, jobID))

	_, err = f.getJob.Execute(ctx, jobID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	var count int64
	require.NoError(t, f.db.Model(&models.CommunicationModel{}).Where("job_id = ?", jobID).Count(&count).Error)
	assert.Zero(t, count)

	err = f.delete.Execute(ctx, jobID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestHowHeardStats(t *testing.T) {
	ctx := context.Background()
	f := setupTechnician(t)

	for i, source := range []string{"Google", "Google", "Word of mouth"} {
		jobID := f.insertJob(t, nil)
		require.NoError(t, f.db.Create(&models.HowHeardModel{
			JobID:     jobID,
			Source:    source,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second).UnixMilli(),
		}).Error)
	}

	result, err := f.stats.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	require.Len(t, result.Sources, 2)
	assert.Equal(t, "Google", result.Sources[0].Source)
	assert.Equal(t, int64(2), result.Sources[0].Count)
}
