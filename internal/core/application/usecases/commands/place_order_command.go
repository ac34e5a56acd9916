package commands

import (
	"errors"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new production order.
// Carries the buyer and product snapshots taken at order time together with
// the requested quantity and payment method.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, buyer, product, 100, order.COD)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyer         order.Buyer
	product       order.ProductSnapshot
	quantity      int
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Buyer and product must be constructed snapshots; the quantity check against
// the product's MOQ belongs to the aggregate and happens in the handler.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	buyer order.Buyer,
	product order.ProductSnapshot,
	quantity int,
	paymentMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyer(buyer),
		cmd.setProduct(product),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.quantity = quantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Buyer returns the buyer snapshot to capture on the order.
func (c PlaceOrderCommand) Buyer() order.Buyer {
	return c.buyer
}

// Product returns the product snapshot to capture on the order.
func (c PlaceOrderCommand) Product() order.ProductSnapshot {
	return c.product
}

// Quantity returns the requested number of units.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// PaymentMethod returns how the buyer chose to pay.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setBuyer(buyer order.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *PlaceOrderCommand) setProduct(product order.ProductSnapshot) error {
	if err := product.Validate(); err != nil {
		return err
	}

	c.product = product
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
