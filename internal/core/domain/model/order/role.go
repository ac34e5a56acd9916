package order

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation on an order.
// The core never consults ambient request context for identity; every
// transition receives the acting role and actor id as explicit parameters,
// and command handlers enforce which roles may perform which operations.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer places orders and may cancel their own pending orders.
	RoleBuyer

	// RoleManager approves/rejects pending orders and records tracking updates.
	RoleManager

	// RoleAdmin has every manager capability across all orders.
	RoleAdmin
)

// getRoleStrings returns the wire names of all roles, including the invalid zero value.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses a role from its wire name ("buyer", "manager", "admin").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role is one of buyer, manager or admin.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleManager && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanManageOrders reports whether the role may approve/reject orders and
// record tracking updates. Managers and admins qualify; buyers do not.
func (r Role) CanManageOrders() bool {
	return r == RoleManager || r == RoleAdmin
}
