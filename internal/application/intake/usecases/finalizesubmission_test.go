package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"repairbay/internal/domain/customer"
	"repairbay/internal/infrastructure/persistence/models"
	"repairbay/internal/infrastructure/repository"
	"repairbay/internal/shared/db"
	apperrors "repairbay/internal/shared/errors"
	"repairbay/internal/shared/logger"
)

type recordingNotifier struct {
	sent []uint
	err  error
}

func (n *recordingNotifier) SendBookingConfirmation(to, firstName string, jobID uint) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, jobID)
	return nil
}

type intakeFixture struct {
	db       *gorm.DB
	reserve  *ReserveJobUseCase
	resolve  *ResolveCustomerUseCase
	finalize *FinalizeSubmissionUseCase
	notifier *recordingNotifier
	jobRepo  *repository.JobRepository
	howHeard *repository.HowHeardRepository
}

func setupIntake(t *testing.T) *intakeFixture {
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
	howHeardRepo := repository.NewHowHeardRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	txManager := db.NewTransactionManager(database)
	resolver := customer.NewResolver(customerRepo)
	notifier := &recordingNotifier{}
	log := logger.NewLogger()

	return &intakeFixture{
		db:       database,
		reserve:  NewReserveJobUseCase(jobRepo, log),
		resolve:  NewResolveCustomerUseCase(resolver, log),
		finalize: NewFinalizeSubmissionUseCase(jobRepo, howHeardRepo, resolver, txManager, notifier, log),
		notifier: notifier,
		jobRepo:  jobRepo,
		howHeard: howHeardRepo,
	}
}

func submissionFor(jobID uint) FinalizeSubmissionCommand {
	password := "1234"
	return FinalizeSubmissionCommand{
		JobID:          jobID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Phone:          "555-0100",
		Email:          "jane@example.com",
		Address:        "1 Main St",
		DeviceType:     "laptop",
		DeviceModel:    "ThinkPad X1",
		Issue:          "Will not boot",
		DevicePassword: &password,
		DataRetention:  true,
		HowHeard:       "Google",
	}
}

func TestReserveJob_SequentialNumbers(t *testing.T) {
	f := setupIntake(t)
	ctx := context.Background()

	first, err := f.reserve.Execute(ctx)
	require.NoError(t, err)
	second, err := f.reserve.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.JobID+1, second.JobID)
	assert.Equal(t, "in_progress", first.Status)
	assert.False(t, first.StartedAt.IsZero())
}

func TestFinalizeSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("binds the form to the reserved job", func(t *testing.T) {
		f := setupIntake(t)
		reserved, err := f.reserve.Execute(ctx)
		require.NoError(t, err)

		result, err := f.finalize.Execute(ctx, submissionFor(reserved.JobID))
		require.NoError(t, err)

		assert.Equal(t, reserved.JobID, result.JobID)
		assert.True(t, result.CustomerCreated)
		assert.NotZero(t, result.CustomerID)
		assert.True(t, result.StartedAt.After(reserved.StartedAt) || result.StartedAt.Equal(reserved.StartedAt))

		j, err := f.jobRepo.FindByID(ctx, reserved.JobID)
		require.NoError(t, err)
		require.NotNil(t, j.CustomerID())
		assert.Equal(t, result.CustomerID, *j.CustomerID())
		assert.Equal(t, "Will not boot", j.Issue())
		assert.Equal(t, "in_progress", j.Status().String())
		require.NotNil(t, j.DevicePassword())
		assert.Equal(t, "1234", *j.DevicePassword())

		referral, err := f.howHeard.FindByJobID(ctx, reserved.JobID)
		require.NoError(t, err)
		require.NotNil(t, referral)
		assert.Equal(t, "Google", referral.Source())

		assert.Equal(t, []uint{reserved.JobID}, f.notifier.sent)
	})

	t.Run("unknown job number is not found", func(t *testing.T) {
		f := setupIntake(t)

		_, err := f.finalize.Execute(ctx, submissionFor(9999))
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("second finalization of the same job conflicts", func(t *testing.T) {
		f := setupIntake(t)
		reserved, err := f.reserve.Execute(ctx)
		require.NoError(t, err)

		_, err = f.finalize.Execute(ctx, submissionFor(reserved.JobID))
		require.NoError(t, err)

		_, err = f.finalize.Execute(ctx, submissionFor(reserved.JobID))
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("matching identity reuses the customer row", func(t *testing.T) {
		f := setupIntake(t)

		firstJob, err := f.reserve.Execute(ctx)
		require.NoError(t, err)
		first, err := f.finalize.Execute(ctx, submissionFor(firstJob.JobID))
		require.NoError(t, err)

		secondJob, err := f.reserve.Execute(ctx)
		require.NoError(t, err)
		cmd := submissionFor(secondJob.JobID)
		cmd.Phone = "555-0199"
		second, err := f.finalize.Execute(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, first.CustomerID, second.CustomerID)
		assert.False(t, second.CustomerCreated)

		var count int64
		require.NoError(t, f.db.Model(&models.CustomerModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("case differences in identity create a new customer", func(t *testing.T) {
		f := setupIntake(t)

		firstJob, err := f.reserve.Execute(ctx)
		require.NoError(t, err)
		first, err := f.finalize.Execute(ctx, submissionFor(firstJob.JobID))
		require.NoError(t, err)

		secondJob, err := f.reserve.Execute(ctx)
		require.NoError(t, err)
		cmd := submissionFor(secondJob.JobID)
		cmd.Email = "Jane@example.com"
		second, err := f.finalize.Execute(ctx, cmd)
		require.NoError(t, err)

		assert.NotEqual(t, first.CustomerID, second.CustomerID)
		assert.True(t, second.CustomerCreated)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		f := setupIntake(t)
		reserved, err := f.reserve.Execute(ctx)
		require.NoError(t, err)

		for _, mutate := range []func(*FinalizeSubmissionCommand){
			func(c *FinalizeSubmissionCommand) { c.FirstName = "" },
			func(c *FinalizeSubmissionCommand) { c.LastName = "" },
			func(c *FinalizeSubmissionCommand) { c.Email = "" },
			func(c *FinalizeSubmissionCommand) { c.Issue = "" },
			func(c *FinalizeSubmissionCommand) { c.HowHeard = "" },
		} {
			cmd := submissionFor(reserved.JobID)
			mutate(&cmd)

			_, err := f.finalize.Execute(ctx, cmd)
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		}
	})

	t.Run("confirmation failure does not fail the submission", func(t *testing.T) {
		f := setupIntake(t)
		f.notifier.err = fmt.Errorf("smtp unreachable")

		reserved, err := f.reserve.Execute(ctx)
		require.NoError(t, err)

		_, err = f.finalize.Execute(ctx, submissionFor(reserved.JobID))
		require.NoError(t, err)
		assert.Empty(t, f.notifier.sent)
	})
}

func TestResolveCustomer(t *testing.T) {
	f := setupIntake(t)
	ctx := context.Background()

	cmd := ResolveCustomerCommand{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		Email:     "jane@example.com",
		Address:   "1 Main St",
	}

	first, err := f.resolve.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := f.resolve.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.CustomerID, second.CustomerID)
}
