package notification

import (
	"errors"
	"strings"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was
// not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor")

// ErrNotificationAlreadySent is returned when attempting to mark an already
// delivered notification as sent a second time.
var ErrNotificationAlreadySent = errors.New("notification already sent")

// Notification is an outbox entry describing a buyer-facing message about an
// order event. Entries are written in the same transaction as the order change
// they describe and delivered asynchronously by a background dispatch job, so
// a broker outage never blocks or loses an order operation.
type Notification struct {
	// id is the unique identifier for the outbox entry
	id kernel.UUID

	// orderID references the order this notification is about
	orderID kernel.UUID

	// orderCode is denormalized for message rendering
	orderCode kernel.OrderCode

	// recipient is the buyer email captured at write time
	recipient string

	// event classifies what happened to the order
	event Event

	// message is the rendered human-readable body
	message string

	// createdAt is when the entry was written
	createdAt time.Time

	// sentAt is set exactly once, when the dispatcher delivered the message
	sentAt *time.Time

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates a new unsent outbox entry.
func NewNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	orderCode kernel.OrderCode,
	recipient string,
	event Event,
	message string,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setOrderID(orderID),
		n.setOrderCode(orderCode),
		n.setRecipient(recipient),
		n.setEvent(event),
		n.setMessage(message),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs an outbox entry from persistence.
func RestoreNotification(
	id kernel.UUID,
	orderID kernel.UUID,
	orderCode kernel.OrderCode,
	recipient string,
	event Event,
	message string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, orderID, orderCode, recipient, event, message, createdAt)
	if err != nil {
		return nil, err
	}

	if sentAt != nil {
		at := sentAt.UTC()
		n.sentAt = &at
	}
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// MarkSent records the delivery time. A notification is sent exactly once;
// a second call returns ErrNotificationAlreadySent.
func (n *Notification) MarkSent(now time.Time) error {
	if n.sentAt != nil {
		return ErrNotificationAlreadySent
	}

	at := now.UTC()
	n.sentAt = &at
	return nil
}

// IsSent reports whether the notification has been delivered.
func (n *Notification) IsSent() bool {
	return n.sentAt != nil
}

// ID returns the outbox entry's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the id of the order this notification is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// OrderCode returns the order code for message rendering.
func (n *Notification) OrderCode() kernel.OrderCode {
	return n.orderCode
}

// Recipient returns the buyer email the message is addressed to.
func (n *Notification) Recipient() string {
	return n.recipient
}

// Event returns what happened to the order.
func (n *Notification) Event() Event {
	return n.event
}

// Message returns the rendered message body.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns when the outbox entry was written.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the notification was delivered, or nil while unsent.
func (n *Notification) SentAt() *time.Time {
	if n.sentAt == nil {
		return nil
	}
	c := *n.sentAt
	return &c
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}

func (n *Notification) setOrderCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	n.orderCode = code
	return nil
}

func (n *Notification) setRecipient(recipient string) error {
	if strings.TrimSpace(recipient) == "" {
		return errs.NewValueIsRequiredError("notification recipient")
	}
	n.recipient = recipient
	return nil
}

func (n *Notification) setEvent(event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	n.event = event
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("notification message")
	}
	n.message = message
	return nil
}

func (n *Notification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsInvalidError("createdAt")
	}
	n.createdAt = createdAt.UTC()
	return nil
}
