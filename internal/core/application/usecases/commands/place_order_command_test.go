package commands_test

import (
	"testing"

	"garmenttrack/internal/core/application/usecases/commands"
	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCommandBuyer(t *testing.T) order.Buyer {
	t.Helper()
	b, err := order.NewBuyer(kernel.NewUUID(),
		"Rahim Textiles", "orders@rahimtextiles.example", "+8801711111111",
		"12 Mirpur Road, Dhaka", "")
	require.NoError(t, err)
	return b
}

func validCommandProduct(t *testing.T) order.ProductSnapshot {
	t.Helper()
	unitPrice, err := kernel.NewMoney(1250)
	require.NoError(t, err)
	p, err := order.NewProductSnapshot(kernel.NewUUID(),
		"Classic Polo Shirt", "Knitwear", unitPrice, 50, nil)
	require.NoError(t, err)
	return p
}

func TestNewPlaceOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(orderID,
			validCommandBuyer(t), validCommandProduct(t), 100, order.PayFirst)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, 100, cmd.Quantity())
		assert.Equal(t, order.PayFirst, cmd.PaymentMethod())
	})

	t.Run("should fail with unconstructed buyer", func(t *testing.T) {
		var invalidBuyer order.Buyer

		_, err := commands.NewPlaceOrderCommand(orderID,
			invalidBuyer, validCommandProduct(t), 100, order.COD)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed product", func(t *testing.T) {
		var invalidProduct order.ProductSnapshot

		_, err := commands.NewPlaceOrderCommand(orderID,
			validCommandBuyer(t), invalidProduct, 100, order.COD)

		require.Error(t, err)
	})

	t.Run("should fail with invalid payment method", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID,
			validCommandBuyer(t), validCommandProduct(t), 100, order.PaymentMethodUnknown)

		require.Error(t, err)
	})

	t.Run("should leave the MOQ check to the aggregate", func(t *testing.T) {
		// Quantity below the MOQ still constructs; the handler surfaces the
		// range error when building the order.
		cmd, err := commands.NewPlaceOrderCommand(orderID,
			validCommandBuyer(t), validCommandProduct(t), 1, order.COD)

		require.NoError(t, err)
		assert.Equal(t, 1, cmd.Quantity())
	})
}
