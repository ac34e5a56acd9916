package jobs

import (
	"context"
	"log/slog"

	"garmenttrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob manages the scheduled delivery of outbox entries.
// Runs every five seconds to publish pending buyer notifications to the broker.
type NotificationDispatchJob struct {
	handler   commands.DispatchNotificationsCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching notifications.
// Uses DispatchNotificationsCommandHandler to drain up to batchSize outbox
// entries per run.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job to run every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
			return
		}

		dispatched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch run failed",
				"dispatched", dispatched, "error", err)
			return
		}

		if dispatched > 0 {
			j.logger.InfoContext(ctx, "Dispatched buyer notifications", "count", dispatched)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
