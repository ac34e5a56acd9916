package commands_test

import (
	"testing"

	"garmenttrack/internal/core/application/usecases/commands"
	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddTrackingUpdateCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAddTrackingUpdateCommand(orderID,
			order.QCChecked, "Dhaka Unit 2", "second pass", actorID, order.RoleManager)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.QCChecked, cmd.Checkpoint())
		assert.Equal(t, "Dhaka Unit 2", cmd.Location())
		assert.Equal(t, "second pass", cmd.Note())
	})

	t.Run("should allow empty note", func(t *testing.T) {
		cmd, err := commands.NewAddTrackingUpdateCommand(orderID,
			order.Packed, "Warehouse A", "", actorID, order.RoleAdmin)

		require.NoError(t, err)
		assert.Empty(t, cmd.Note())
	})

	t.Run("should fail with checkpoint outside the sequence", func(t *testing.T) {
		_, err := commands.NewAddTrackingUpdateCommand(orderID,
			order.CheckpointUnknown, "Dhaka Unit 2", "", actorID, order.RoleManager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidCheckpoint)
	})

	t.Run("should fail with blank location", func(t *testing.T) {
		_, err := commands.NewAddTrackingUpdateCommand(orderID,
			order.Packed, "  ", "", actorID, order.RoleManager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := commands.NewAddTrackingUpdateCommand(orderID,
			order.Packed, "Warehouse A", "", actorID, order.RoleUnknown)

		require.Error(t, err)
	})
}
