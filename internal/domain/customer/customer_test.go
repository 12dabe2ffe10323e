package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with required fields", func(t *testing.T) {
		c, err := NewCustomer("Jane", "Doe", "555-0101", "jane@example.com", "1 Main St", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Jane", c.FirstName())
		assert.Equal(t, "Doe", c.LastName())
		assert.Equal(t, "jane@example.com", c.Email())
	})

	t.Run("rejects missing identity fields", func(t *testing.T) {
		_, err := NewCustomer("", "Doe", "", "jane@example.com", "", time.Now())
		assert.Error(t, err)

		_, err = NewCustomer("Jane", "", "", "jane@example.com", "", time.Now())
		assert.Error(t, err)

		_, err = NewCustomer("Jane", "Doe", "", "", "", time.Now())
		assert.Error(t, err)
	})
}

func TestCustomer_MatchesIdentity(t *testing.T) {
	c, err := NewCustomer("Jane", "Doe", "", "jane@example.com", "", time.Now())
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		assert.True(t, c.MatchesIdentity("Jane", "Doe", "jane@example.com"))
	})

	t.Run("case differences do not match", func(t *testing.T) {
		assert.False(t, c.MatchesIdentity("jane", "Doe", "jane@example.com"))
		assert.False(t, c.MatchesIdentity("Jane", "doe", "jane@example.com"))
		assert.False(t, c.MatchesIdentity("Jane", "Doe", "Jane@example.com"))
	})

	t.Run("different identity does not match", func(t *testing.T) {
		assert.False(t, c.MatchesIdentity("John", "Doe", "jane@example.com"))
	})
}

func TestCustomer_SetID(t *testing.T) {
	c, err := NewCustomer("Jane", "Doe", "", "jane@example.com", "", time.Now())
	require.NoError(t, err)

	require.NoError(t, c.SetID(9))
	assert.Equal(t, uint(9), c.ID())
	assert.Error(t, c.SetID(10))
}
