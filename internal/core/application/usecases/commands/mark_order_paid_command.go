package commands

import (
	"errors"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
)

// MarkOrderPaidCommand represents the external payment flow confirming that a
// PayFirst order has been paid.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record a payment confirmation.
func NewMarkOrderPaidCommand(orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that was paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
