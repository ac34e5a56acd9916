package commands

import (
	"context"
	"fmt"
	"time"

	"garmenttrack/internal/core/domain/model/notification"
	"garmenttrack/internal/core/domain/model/order"
)

// AddTrackingUpdateCommandHandler handles recording production checkpoints on
// approved orders.
//
// Business rules:
//   - Only managers and admins may record updates
//   - The order must be Approved; any other status fails with an
//     InvalidOrderStateError and leaves the history untouched
//   - The history is append-only; the update is stored with the recording
//     actor and the current time
//   - The buyer notification is enqueued in the same transaction
type AddTrackingUpdateCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddTrackingUpdateCommandHandler creates a handler for tracking updates.
func NewAddTrackingUpdateCommandHandler(uowFactory UoWFactory) AddTrackingUpdateCommandHandler {
	return AddTrackingUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking update command.
func (h *AddTrackingUpdateCommandHandler) Handle(ctx context.Context, cmd AddTrackingUpdateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActorRole().CanManageOrders() {
		return ErrActorIsNotAllowed
	}

	update, err := order.NewTrackingUpdate(cmd.Checkpoint(), cmd.Location(), cmd.Note(),
		cmd.ActorID(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AddTrackingUpdate(update); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o, o.Status()); err != nil {
		return err
	}

	message := fmt.Sprintf("Order %s update: %s at %s.",
		o.Code(), update.Checkpoint(), update.Location())
	if err = enqueueOrderNotification(ctx, uow.NotificationRepository(), o, notification.TrackingUpdated, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
