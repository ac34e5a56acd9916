package order_test

import (
	"testing"

	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should parse COD and PayFirst", func(t *testing.T) {
		m, err := order.PaymentMethodFromString("COD")
		require.NoError(t, err)
		assert.Equal(t, order.COD, m)

		m, err = order.PaymentMethodFromString("PayFirst")
		require.NoError(t, err)
		assert.Equal(t, order.PayFirst, m)
	})

	t.Run("should fail for unknown method", func(t *testing.T) {
		got, err := order.PaymentMethodFromString("Invoice")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PaymentMethodUnknown, got)
	})
}

func TestPaymentMethod_RequiresOnlinePayment(t *testing.T) {
	t.Run("should require payment only for PayFirst", func(t *testing.T) {
		assert.True(t, order.PayFirst.RequiresOnlinePayment())
		assert.False(t, order.COD.RequiresOnlinePayment())
		assert.False(t, order.PaymentMethodUnknown.RequiresOnlinePayment())
	})
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("should parse pending and paid", func(t *testing.T) {
		s, err := order.PaymentStatusFromString("pending")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPending, s)

		s, err = order.PaymentStatusFromString("paid")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, s)
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		got, err := order.PaymentStatusFromString("refunded")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PaymentStatusUnknown, got)
	})
}
