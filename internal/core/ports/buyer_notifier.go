package ports

import (
	"context"

	"garmenttrack/internal/core/domain/model/notification"
)

// BuyerNotifier delivers a buyer-facing notification through the message
// broker. Implementations publish the message and return once the broker
// confirmed it; marking the outbox entry as sent stays with the caller.
type BuyerNotifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}
