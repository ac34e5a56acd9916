// Package notification contains the outbox entry model for buyer-facing
// messages. Order operations write entries transactionally; a background job
// delivers them through the message broker and marks them sent.
package notification
