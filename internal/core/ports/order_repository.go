// Package ports defines the persistence and messaging contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage together with its
	// (initially empty) tracking history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	//
	// expectedStatus is the status the caller loaded the order in. The store
	// applies the write only if the persisted row still carries that status,
	// so two actors racing to decide the same pending order cannot both
	// succeed: the loser gets an InvalidTransitionError and the row keeps
	// the winner's outcome. New tracking updates are appended, never
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its full tracking history. Returns ObjectNotFoundError when no order
	// with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its buyer-facing code.
	// Returns ObjectNotFoundError when no order with the code exists.
	GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error)
}
