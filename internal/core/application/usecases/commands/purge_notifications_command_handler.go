package commands

import (
	"context"
	"time"
)

// PurgeNotificationsCommandHandler removes delivered outbox entries that are
// older than the retention window. Unsent entries are never purged.
type PurgeNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPurgeNotificationsCommandHandler creates a handler for outbox purge runs.
func NewPurgeNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeNotificationsCommandHandler {
	return PurgeNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one purge run and returns how many entries were removed.
func (h *PurgeNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	purged, err := uow.NotificationRepository().PurgeSentBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
