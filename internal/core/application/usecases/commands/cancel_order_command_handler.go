package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles a buyer withdrawing their own pending
// order.
//
// Business rules:
//   - Only the order's owning buyer may cancel (ErrActorIsNotOrderOwner)
//   - Only a Pending order can be cancelled; once a manager decided, the
//     cancellation fails with an InvalidTransitionError
//   - No buyer notification is enqueued: the buyer performed the action
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if !o.Buyer().ID().IsEqual(cmd.ActorID()) {
		return ErrActorIsNotOrderOwner
	}

	previousStatus := o.Status()
	if err = o.Cancel(time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o, previousStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
