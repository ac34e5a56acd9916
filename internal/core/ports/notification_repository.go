package ports

import (
	"context"
	"time"

	"garmenttrack/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the buyer
// notification outbox. Entries are added in the same transaction as the order
// change they describe and picked up by the dispatch job.
type NotificationRepository interface {
	// Add persists a new outbox entry.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing entry, in practice the sentAt
	// stamp set by the dispatcher.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetAllUnsent retrieves unsent entries in creation order, up to limit.
	GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)

	// PurgeSentBefore deletes entries delivered before the cutoff and
	// returns how many rows were removed.
	PurgeSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
