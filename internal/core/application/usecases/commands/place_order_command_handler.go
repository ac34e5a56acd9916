package commands

import (
	"context"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Generates the buyer-facing order code and creates the order in Pending
// status awaiting a manager decision.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the generated
// buyer-facing order code.
// The order price is captured here as quantity times the snapshot unit price.
// Uses a transaction to ensure the order is fully persisted or rolled back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderCode{}, err
	}

	code := kernel.NewOrderCode()

	newOrder, err := order.NewOrder(cmd.OrderID(), code, cmd.Buyer(), cmd.Product(),
		cmd.Quantity(), cmd.PaymentMethod(), time.Now())
	if err != nil {
		return kernel.OrderCode{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.OrderCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderCode{}, err
	}

	return code, nil
}
