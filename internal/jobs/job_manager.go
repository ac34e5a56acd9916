package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"garmenttrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationDispatchJob *NotificationDispatchJob
	outboxPurgeJob          *OutboxPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchNotificationsCommandHandler,
	purgeHandler commands.PurgeNotificationsCommandHandler,
	dispatchBatchSize int,
	outboxRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationDispatchJob: NewNotificationDispatchJob(dispatchHandler, dispatchBatchSize, logger),
		outboxPurgeJob:          NewOutboxPurgeJob(purgeHandler, outboxRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	if err := jm.outboxPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationDispatchJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationDispatchJob.Stop()
	jm.outboxPurgeJob.Stop()
}
