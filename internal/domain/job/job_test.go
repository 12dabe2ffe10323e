package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "repairbay/internal/domain/job/valueobjects"
)

func TestNewReservation(t *testing.T) {
	now := time.Now()
	j := NewReservation(now)

	assert.Equal(t, vo.StatusInProgress, j.Status())
	assert.Equal(t, now, j.StartedAt())
	assert.Nil(t, j.CustomerID())
	assert.Empty(t, j.Issue())
	assert.True(t, j.IsReserved())
}

func TestJob_Finalize(t *testing.T) {
	t.Run("binds customer and details", func(t *testing.T) {
		reserved := time.Now().Add(-10 * time.Minute)
		j := NewReservation(reserved)
		require.NoError(t, j.SetID(1))

		password := "0000"
		finalized := time.Now()
		err := j.Finalize(7, DeviceDetails{
			DeviceType:     "Laptop",
			DeviceModel:    "ThinkPad X220",
			Issue:          "Does not boot",
			DevicePassword: &password,
			DataRetention:  true,
		}, finalized)
		require.NoError(t, err)

		require.NotNil(t, j.CustomerID())
		assert.Equal(t, uint(7), *j.CustomerID())
		assert.Equal(t, "Does not boot", j.Issue())
		assert.True(t, j.DataRetention())
		assert.False(t, j.IsReserved())
	})

	t.Run("resets start time to finalization time", func(t *testing.T) {
		reserved := time.Now().Add(-1 * time.Hour)
		j := NewReservation(reserved)

		finalized := time.Now()
		err := j.Finalize(1, DeviceDetails{Issue: "Cracked screen"}, finalized)
		require.NoError(t, err)

		assert.Equal(t, finalized, j.StartedAt())
	})

	t.Run("rejects zero customer ID", func(t *testing.T) {
		j := NewReservation(time.Now())
		err := j.Finalize(0, DeviceDetails{Issue: "Broken hinge"}, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty issue", func(t *testing.T) {
		j := NewReservation(time.Now())
		err := j.Finalize(1, DeviceDetails{}, time.Now())
		assert.Error(t, err)
	})
}

func TestJob_SetStatus(t *testing.T) {
	t.Run("closed status stamps end time", func(t *testing.T) {
		j := NewReservation(time.Now())
		now := time.Now()

		require.NoError(t, j.SetStatus(vo.StatusCompleted, now))

		require.NotNil(t, j.EndedAt())
		assert.Equal(t, now, *j.EndedAt())
	})

	t.Run("reopening clears end time", func(t *testing.T) {
		j := NewReservation(time.Now())
		require.NoError(t, j.SetStatus(vo.StatusPickedUp, time.Now()))
		require.NotNil(t, j.EndedAt())

		require.NoError(t, j.SetStatus(vo.StatusWaitingForParts, time.Now()))
		assert.Nil(t, j.EndedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		j := NewReservation(time.Now())
		err := j.SetStatus(vo.Status("lost"), time.Now())
		assert.Error(t, err)
	})
}

func TestJob_ClearDevicePassword(t *testing.T) {
	j := NewReservation(time.Now())
	password := "1234"
	require.NoError(t, j.Finalize(1, DeviceDetails{
		Issue:          "Battery drain",
		DevicePassword: &password,
	}, time.Now()))
	require.NotNil(t, j.DevicePassword())

	j.ClearDevicePassword(time.Now())
	assert.Nil(t, j.DevicePassword())
}

func TestJob_SetID(t *testing.T) {
	j := NewReservation(time.Now())
	require.NoError(t, j.SetID(3))
	assert.Error(t, j.SetID(4))
}
