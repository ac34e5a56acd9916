// Package queries contains read-only operations that project persisted state
// into response models. Implements the Query side of the CQRS architecture:
// handlers read the database directly with raw SQL and never mutate anything.
package queries

import (
	"errors"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order list, optionally narrowed to one
// lifecycle status and/or one buyer. Managers browse the full list; buyers
// see only their own orders by passing their id.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status  *order.Status
	buyerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query.
// Both filters are optional; pass nil to skip one.
func NewGetOrdersQuery(status *order.Status, buyerID *kernel.UUID) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status
	}
	if buyerID != nil {
		if err := buyerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.buyerID = buyerID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// BuyerID returns the optional buyer filter.
func (q GetOrdersQuery) BuyerID() *kernel.UUID {
	return q.buyerID
}

// GetOrdersQueryResponse is one row of the order list view.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	Code          string
	BuyerName     string
	ProductName   string
	Quantity      int
	PriceCents    int64
	PaymentMethod string
	PaymentStatus string
	Status        string
	CreatedAt     time.Time
}
