package queries

import (
	"errors"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/guard"
)

var (
	ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
		"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
	)
)

// GetOrderTimelineQuery retrieves the derived production timeline for one
// order: all eight checkpoints with their completion state and any recorded
// updates. The timeline is recomputed from the stored history on every call.
type GetOrderTimelineQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a timeline query for the given order.
func NewGetOrderTimelineQuery(orderID kernel.UUID) (GetOrderTimelineQuery, error) {
	q := GetOrderTimelineQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}
	q.orderID = orderID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to build the timeline for.
func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTimelineQueryResponse is the full timeline view of one order.
type GetOrderTimelineQueryResponse struct {
	OrderID kernel.UUID
	Code    string
	Status  string
	Steps   []TimelineStepResponse
}

// TimelineStepResponse is one of the eight rows of the timeline view.
// The update fields are nil when the step's state is a system estimate
// rather than a recorded update.
type TimelineStepResponse struct {
	Checkpoint string
	Completed  bool
	Current    bool
	Location   *string
	Note       *string
	UpdatedBy  *kernel.UUID
	UpdatedAt  *time.Time
}
