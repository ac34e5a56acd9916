package commands

import (
	"context"
	"fmt"

	"garmenttrack/internal/core/domain/model/notification"
)

// RejectOrderCommandHandler handles the manager decision to decline a pending
// order. Same authorization and atomicity rules as approval; rejection does
// not stamp a decision timestamp on the order.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Returns ErrActorIsNotAllowed when the actor cannot manage orders and an
// InvalidTransitionError when the order is no longer pending.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActorRole().CanManageOrders() {
		return ErrActorIsNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previousStatus := o.Status()
	if err = o.Reject(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o, previousStatus); err != nil {
		return err
	}

	message := fmt.Sprintf("Your order %s has been rejected. Please contact us for details.", o.Code())
	if err = enqueueOrderNotification(ctx, uow.NotificationRepository(), o, notification.OrderRejected, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
