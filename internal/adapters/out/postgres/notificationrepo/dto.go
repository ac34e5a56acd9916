// Package notificationrepo provides data transfer objects and mapping functions
// for the buyer notification outbox. Outbox rows are written in the same
// transaction as the order change they describe and drained by the dispatch job.
package notificationrepo

import (
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting outbox
// entries. The created_at index serves the dispatcher's oldest-first drain,
// the sent_at index serves both the unsent scan and the retention purge.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	OrderCode string
	Recipient string
	Event     string
	Message   string
	CreatedAt time.Time  `gorm:"index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox entries.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		OrderCode: aggregate.OrderCode().String(),
		Recipient: aggregate.Recipient(),
		Event:     aggregate.Event().String(),
		Message:   aggregate.Message(),
		CreatedAt: aggregate.CreatedAt(),
		SentAt:    aggregate.SentAt(),
	}
}

// toDomain converts a database DTO to a notification aggregate using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	orderCode, err := kernel.OrderCodeFromString(dto.OrderCode)
	if err != nil {
		return nil, err
	}

	event, err := notification.EventFromString(dto.Event)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		orderID,
		orderCode,
		dto.Recipient,
		event,
		dto.Message,
		dto.CreatedAt,
		dto.SentAt,
	)
}
