package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"in_progress", "completed", "cancelled", "waiting_for_parts", "picked_up"} {
			status, err := NewStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewStatus("shipped")
		assert.Error(t, err)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		_, err := NewStatus("")
		assert.Error(t, err)
	})
}

func TestStatus_IsClosed(t *testing.T) {
	assert.True(t, StatusCompleted.IsClosed())
	assert.True(t, StatusPickedUp.IsClosed())
	assert.True(t, StatusCancelled.IsClosed())
	assert.False(t, StatusInProgress.IsClosed())
	assert.False(t, StatusWaitingForParts.IsClosed())
}
