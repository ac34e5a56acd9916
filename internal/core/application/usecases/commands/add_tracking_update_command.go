package commands

import (
	"errors"
	"strings"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrAddTrackingUpdateCommandIsNotConstructed = errors.New(
		"AddTrackingUpdateCommand must be created via NewAddTrackingUpdateCommand constructor",
	)
)

// AddTrackingUpdateCommand represents a request to record a production
// checkpoint on an approved order. The checkpoint does not have to follow the
// previous one; managers may re-record earlier stages (e.g. a second QC pass).
type AddTrackingUpdateCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	checkpoint order.Checkpoint
	location   string
	note       string
	actorID    kernel.UUID
	actorRole  order.Role

	guard guard.ConstructorGuard
}

// NewAddTrackingUpdateCommand creates a command to record a tracking update.
// The checkpoint must be one of the eight sequence members and the location
// may not be blank; the note is optional.
func NewAddTrackingUpdateCommand(
	orderID kernel.UUID,
	checkpoint order.Checkpoint,
	location string,
	note string,
	actorID kernel.UUID,
	actorRole order.Role,
) (AddTrackingUpdateCommand, error) {
	cmd := AddTrackingUpdateCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCheckpoint(checkpoint),
		cmd.setLocation(location),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return AddTrackingUpdateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTrackingUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingUpdateCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c AddTrackingUpdateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Checkpoint returns the production checkpoint to record.
func (c AddTrackingUpdateCommand) Checkpoint() order.Checkpoint {
	return c.checkpoint
}

// Location returns where the checkpoint was reached.
func (c AddTrackingUpdateCommand) Location() string {
	return c.location
}

// Note returns the optional free-text note.
func (c AddTrackingUpdateCommand) Note() string {
	return c.note
}

// ActorID returns the identifier of the acting user.
func (c AddTrackingUpdateCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c AddTrackingUpdateCommand) ActorRole() order.Role {
	return c.actorRole
}

func (c *AddTrackingUpdateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddTrackingUpdateCommand) setCheckpoint(checkpoint order.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	c.checkpoint = checkpoint
	return nil
}

func (c *AddTrackingUpdateCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *AddTrackingUpdateCommand) setActor(actorID kernel.UUID, actorRole order.Role) error {
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
