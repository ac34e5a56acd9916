// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the notification outbox.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every five seconds to publish unsent buyer notifications to the message broker
// 2. OutboxPurgeJob - Runs hourly to remove delivered notifications that are older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, purgeHandler, batchSize, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch failures are logged and retried on the next run; delivery is at-least-once
// - Purge failures are logged and retried on the next hourly run
// - Failed job starts will stop any already running jobs
package jobs
