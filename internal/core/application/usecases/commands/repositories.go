// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"garmenttrack/internal/core/ports"
)

// Authorization errors shared by the order decision commands.
// Role and ownership checks happen here in the application layer; the
// aggregate itself only guards status transitions.
var (
	// ErrActorIsNotAllowed is returned when the acting user's role does not
	// permit managing orders (approve, reject, record tracking updates).
	ErrActorIsNotAllowed = errors.New("actor is not allowed to manage orders")

	// ErrActorIsNotOrderOwner is returned when a buyer tries to cancel an
	// order that belongs to a different buyer.
	ErrActorIsNotOrderOwner = errors.New("actor is not the order owner")
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRepoFactory provides access to the notification outbox
	// repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW manages transactions for outbox-only operations,
	// used by the dispatch and purge jobs.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW manages transactions across the order aggregate and the
	// notification outbox. Used by commands that change an order and must
	// enqueue a buyer notification atomically with that change.
	UoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// UoWFactory creates new unit of work instances for order-plus-outbox operations.
	UoWFactory interface {
		Create() UoW
	}
)
