// Package rabbitmq publishes buyer notifications to the message broker.
// The adapter implements the BuyerNotifier port on top of a RabbitMQ topic
// exchange; downstream channels (email, SMS, in-app) bind their own queues
// with routing keys per event kind.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"garmenttrack/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// exchangeName is the topic exchange all buyer notifications go through.
	exchangeName = "buyer_notifications"

	// routingKeyPrefix namespaces routing keys, e.g. "notification.OrderApproved".
	routingKeyPrefix = "notification."
)

// notificationMessage is the wire format published to the broker.
type notificationMessage struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	OrderCode string    `json:"orderCode"`
	Recipient string    `json:"recipient"`
	Event     string    `json:"event"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// RabbitBuyerNotifier implements BuyerNotifier using a RabbitMQ channel.
// Publishing is synchronous: Notify returns once the broker accepted the
// message, so the caller can safely stamp the outbox entry as sent.
type RabbitBuyerNotifier struct {
	channel *amqp.Channel
}

// NewRabbitBuyerNotifier creates a notifier on the given channel and declares
// the notification exchange. The exchange is durable; messages survive broker
// restarts together with the queues bound to it.
func NewRabbitBuyerNotifier(channel *amqp.Channel) (*RabbitBuyerNotifier, error) {
	if channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is required")
	}

	err := channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchangeName, err)
	}

	return &RabbitBuyerNotifier{channel: channel}, nil
}

// Notify publishes the notification to the broker.
// The outbox dispatcher retries on the next run if publishing fails, so
// delivery is at-least-once; consumers deduplicate by notification id.
func (p *RabbitBuyerNotifier) Notify(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(newNotificationMessage(n))
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID(), err)
	}

	err = p.channel.PublishWithContext(ctx,
		exchangeName,
		routingKey(n.Event()),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    n.ID().String(),
			Timestamp:    n.CreatedAt(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID(), err)
	}

	return nil
}

// newNotificationMessage maps an outbox entry to its wire format.
func newNotificationMessage(n *notification.Notification) notificationMessage {
	return notificationMessage{
		ID:        n.ID().String(),
		OrderID:   n.OrderID().String(),
		OrderCode: n.OrderCode().String(),
		Recipient: n.Recipient(),
		Event:     n.Event().String(),
		Message:   n.Message(),
		CreatedAt: n.CreatedAt(),
	}
}

// routingKey derives the routing key for an event kind.
func routingKey(event notification.Event) string {
	return routingKeyPrefix + event.String()
}
