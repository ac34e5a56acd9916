package commands

import (
	"context"
	"fmt"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/notification"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/core/ports"
)

// ApproveOrderCommandHandler handles the manager decision to accept a pending
// order into production.
//
// Business rules:
//   - Only managers and admins may approve
//   - Only a Pending order can be approved; racing decisions on the same
//     order resolve to exactly one winner via the status-guarded update
//   - The buyer notification is enqueued in the same transaction as the
//     status change, so the two cannot diverge
type ApproveOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(uowFactory UoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Returns ErrActorIsNotAllowed when the actor cannot manage orders, an
// ObjectNotFoundError when the order does not exist, and an
// InvalidTransitionError when the order is no longer pending.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
	if err = o.Approve(time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o, previousStatus); err != nil {
		return err
	}

	message := fmt.Sprintf("Your order %s has been approved and is now in production.", o.Code())
	if err = enqueueOrderNotification(ctx, uow.NotificationRepository(), o, notification.OrderApproved, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// enqueueOrderNotification writes a buyer notification outbox entry for the
// given order event inside the caller's transaction.
func enqueueOrderNotification(
	ctx context.Context,
	repo ports.NotificationRepository,
	o *order.Order,
	event notification.Event,
	message string,
) error {
	n, err := notification.NewNotification(kernel.NewUUID(), o.ID(), o.Code(),
		o.Buyer().Email(), event, message, time.Now())
	if err != nil {
		return err
	}

	return repo.Add(ctx, n)
}
