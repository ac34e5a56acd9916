package notification_test

import (
	"testing"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/notification"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	code := kernel.NewOrderCode()
	createdAt := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	t.Run("should create unsent notification", func(t *testing.T) {
		n, err := notification.NewNotification(id, orderID, code,
			"orders@rahimtextiles.example", notification.OrderApproved,
			"Your order "+code.String()+" was approved", createdAt)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.True(t, n.ID().IsEqual(id))
		assert.True(t, n.OrderID().IsEqual(orderID))
		assert.Equal(t, notification.OrderApproved, n.Event())
		assert.False(t, n.IsSent())
		assert.Nil(t, n.SentAt())
	})

	t.Run("should fail with blank recipient", func(t *testing.T) {
		n, err := notification.NewNotification(id, orderID, code,
			"  ", notification.OrderApproved, "msg", createdAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, n)
	})

	t.Run("should fail with unknown event", func(t *testing.T) {
		n, err := notification.NewNotification(id, orderID, code,
			"buyer@example.com", notification.EventUnknown, "msg", createdAt)

		require.Error(t, err)
		assert.Nil(t, n)
	})

	t.Run("should fail with blank message", func(t *testing.T) {
		n, err := notification.NewNotification(id, orderID, code,
			"buyer@example.com", notification.TrackingUpdated, "", createdAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, n)
	})
}

func TestNotification_MarkSent(t *testing.T) {
	newNotification := func(t *testing.T) *notification.Notification {
		t.Helper()
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewOrderCode(), "buyer@example.com",
			notification.OrderRejected, "rejected", time.Now())
		require.NoError(t, err)
		return n
	}

	t.Run("should record delivery time once", func(t *testing.T) {
		n := newNotification(t)
		sentAt := time.Date(2025, 3, 11, 10, 5, 0, 0, time.UTC)

		err := n.MarkSent(sentAt)

		require.NoError(t, err)
		assert.True(t, n.IsSent())
		assert.Equal(t, sentAt, *n.SentAt())
	})

	t.Run("should fail to mark sent twice", func(t *testing.T) {
		n := newNotification(t)
		first := time.Now()
		require.NoError(t, n.MarkSent(first))

		err := n.MarkSent(first.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, notification.ErrNotificationAlreadySent, err)
		assert.True(t, n.SentAt().Equal(first.UTC()))
	})
}

func TestRestoreNotification(t *testing.T) {
	t.Run("should restore sent notification", func(t *testing.T) {
		sentAt := time.Date(2025, 3, 11, 10, 5, 0, 0, time.UTC)

		n, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewOrderCode(), "buyer@example.com",
			notification.TrackingUpdated, "packed", sentAt.Add(-time.Minute), &sentAt)

		require.NoError(t, err)
		assert.True(t, n.IsSent())
		assert.Equal(t, sentAt, *n.SentAt())
	})
}

func TestEventFromString(t *testing.T) {
	t.Run("should round trip all events", func(t *testing.T) {
		events := []notification.Event{
			notification.OrderApproved,
			notification.OrderRejected,
			notification.TrackingUpdated,
		}
		for _, e := range events {
			got, err := notification.EventFromString(e.String())

			require.NoError(t, err)
			assert.Equal(t, e, got)
		}
	})

	t.Run("should fail for unknown event name", func(t *testing.T) {
		_, err := notification.EventFromString("OrderShipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
