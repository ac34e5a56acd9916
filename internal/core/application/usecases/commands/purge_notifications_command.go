package commands

import (
	"errors"
	"fmt"
	"time"

	"garmenttrack/internal/pkg/guard"
)

var (
	ErrPurgeNotificationsCommandIsNotConstructed = errors.New(
		"PurgeNotificationsCommand must be created via NewPurgeNotificationsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeNotificationsCommand represents one run of the outbox cleaner: delete
// delivered entries older than the retention window.
type PurgeNotificationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeNotificationsCommand creates a command for one purge run.
func NewPurgeNotificationsCommand(retention time.Duration) (PurgeNotificationsCommand, error) {
	cmd := PurgeNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeNotificationsCommandIsNotConstructed)
}

// Retention returns how long delivered entries are kept.
func (c PurgeNotificationsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeNotificationsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return fmt.Errorf("%w: got %s", ErrRetentionIsInvalid, retention)
	}

	c.retention = retention
	return nil
}
