package commands

import (
	"errors"
	"fmt"

	"garmenttrack/internal/pkg/guard"
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// DispatchNotificationsCommand represents one run of the outbox dispatcher:
// deliver up to batchSize unsent buyer notifications through the broker.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command for one dispatch run.
func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of notifications to deliver per run.
func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBatchSizeIsInvalid, batchSize)
	}

	c.batchSize = batchSize
	return nil
}
