package order_test

import (
	"testing"

	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Approved, order.Rejected, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should fail for out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return human readable names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Approved", order.Approved.String())
		assert.Equal(t, "Rejected", order.Rejected.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.StatusUnknown.String())
		assert.Equal(t, "Unknown", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"Pending":   order.Pending,
			"Approved":  order.Approved,
			"Rejected":  order.Rejected,
			"Cancelled": order.Cancelled,
		}

		for str, want := range cases {
			got, err := order.StatusFromString(str)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should fail for unknown strings", func(t *testing.T) {
		got, err := order.StatusFromString("Completed")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusUnknown, got)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report pending as not terminal", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
	})

	t.Run("should report decided statuses as terminal", func(t *testing.T) {
		assert.True(t, order.Approved.IsTerminal())
		assert.True(t, order.Rejected.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow all transitions out of pending", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Approved))
		assert.True(t, order.Pending.CanTransitionTo(order.Rejected))
		assert.True(t, order.Pending.CanTransitionTo(order.Cancelled))
	})

	t.Run("should deny transitions out of terminal statuses", func(t *testing.T) {
		terminals := []order.Status{order.Approved, order.Rejected, order.Cancelled}
		targets := []order.Status{order.Pending, order.Approved, order.Rejected, order.Cancelled}

		for _, from := range terminals {
			for _, to := range targets {
				assert.False(t, from.CanTransitionTo(to),
					"%s -> %s should not be allowed", from, to)
			}
		}
	})

	t.Run("should deny transition back to pending", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Pending))
	})

	t.Run("should deny transitions involving unknown", func(t *testing.T) {
		assert.False(t, order.StatusUnknown.CanTransitionTo(order.Approved))
		assert.False(t, order.Pending.CanTransitionTo(order.StatusUnknown))
	})
}
