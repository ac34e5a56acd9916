package cmd

import "time"

// Config carries the service settings resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL string

	// NotificationBatchSize caps how many outbox entries one dispatch run
	// publishes to the broker.
	NotificationBatchSize int

	// OutboxRetention is how long delivered notifications stay in the
	// outbox before the hourly purge removes them.
	OutboxRetention time.Duration
}
