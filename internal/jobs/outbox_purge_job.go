package jobs

import (
	"context"
	"log/slog"
	"time"

	"garmenttrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxPurgeJob manages the scheduled cleanup of delivered outbox entries.
// Runs hourly to remove sent notifications older than the retention window.
type OutboxPurgeJob struct {
	handler   commands.PurgeNotificationsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxPurgeJob creates a new job for purging the notification outbox.
// Entries stay available for redelivery and inspection until they are both
// sent and older than retention.
func NewOutboxPurgeJob(
	handler commands.PurgeNotificationsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *OutboxPurgeJob {
	return &OutboxPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_purge_job"),
	}
}

// Start begins the purge job to run at the top of every hour.
func (j *OutboxPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeNotificationsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox purge job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox purge run failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged delivered notifications", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox purge job started (running hourly)")
	return nil
}

// Stop stops the purge job.
func (j *OutboxPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox purge job stopped")
}
