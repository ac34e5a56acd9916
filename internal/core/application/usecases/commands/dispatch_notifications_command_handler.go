package commands

import (
	"context"
	"time"

	"garmenttrack/internal/core/ports"
)

// DispatchNotificationsCommandHandler delivers unsent outbox entries through
// the buyer notifier and stamps them sent.
//
// Delivery is at-least-once: an entry is marked sent only after the broker
// confirmed the publish, so a crash between the two redelivers the message on
// the next run. A broker failure mid-batch stops the run; entries already
// delivered in this batch keep their sent stamp through the commit.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	notifier   ports.BuyerNotifier
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox dispatch runs.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	notifier ports.BuyerNotifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one dispatch run and returns how many notifications were
// delivered. A publish failure ends the run early but does not discard the
// deliveries that already succeeded.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) (int, error) {
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

	repo := uow.NotificationRepository()
	unsent, err := repo.GetAllUnsent(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	var publishErr error
	for _, n := range unsent {
		if err = h.notifier.Notify(ctx, n); err != nil {
			publishErr = err
			break
		}

		if err = n.MarkSent(time.Now()); err != nil {
			publishErr = err
			break
		}

		if err = repo.Update(ctx, n); err != nil {
			return dispatched, err
		}
		dispatched++
	}

	if err = uow.Commit(ctx); err != nil {
		return dispatched, err
	}

	return dispatched, publishErr
}
