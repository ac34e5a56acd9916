package commands

import (
	"errors"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
)

// ApproveOrderCommand represents a manager's decision to accept a pending
// order into production. The acting user is carried explicitly so the handler
// can enforce the role check without reaching into ambient state.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve a pending order.
// The role check itself happens in the handler; the command only requires a
// valid role value.
func NewApproveOrderCommand(orderID, actorID kernel.UUID, actorRole order.Role) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting user.
func (c ApproveOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c ApproveOrderCommand) ActorRole() order.Role {
	return c.actorRole
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setActor(actorID kernel.UUID, actorRole order.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
