package order_test

import (
	"testing"

	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse all valid roles", func(t *testing.T) {
		cases := map[string]order.Role{
			"buyer":   order.RoleBuyer,
			"manager": order.RoleManager,
			"admin":   order.RoleAdmin,
		}

		for str, want := range cases {
			got, err := order.RoleFromString(str)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should fail for unknown role", func(t *testing.T) {
		got, err := order.RoleFromString("supervisor")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.RoleUnknown, got)
	})
}

func TestRole_CanManageOrders(t *testing.T) {
	t.Run("should allow manager and admin", func(t *testing.T) {
		assert.True(t, order.RoleManager.CanManageOrders())
		assert.True(t, order.RoleAdmin.CanManageOrders())
	})

	t.Run("should deny buyer and unknown", func(t *testing.T) {
		assert.False(t, order.RoleBuyer.CanManageOrders())
		assert.False(t, order.RoleUnknown.CanManageOrders())
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should pass for valid roles", func(t *testing.T) {
		for _, r := range []order.Role{order.RoleBuyer, order.RoleManager, order.RoleAdmin} {
			require.NoError(t, r.Validate())
		}
	})

	t.Run("should fail for unknown role", func(t *testing.T) {
		require.Error(t, order.RoleUnknown.Validate())
	})
}
