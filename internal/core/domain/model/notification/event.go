package notification

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
)

// Event classifies what happened to an order that the buyer should hear about.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// OrderApproved is sent when a manager accepts the order into production.
	OrderApproved

	// OrderRejected is sent when a manager declines the order.
	OrderRejected

	// TrackingUpdated is sent when a new production checkpoint is recorded.
	TrackingUpdated
)

// getEventStrings returns the wire names of all events.
func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:    "Unknown",
		OrderApproved:   "OrderApproved",
		OrderRejected:   "OrderRejected",
		TrackingUpdated: "TrackingUpdated",
	}
}

// EventFromString parses an event from its wire name.
func EventFromString(s string) (Event, error) {
	for event, str := range getEventStrings() {
		if event != EventUnknown && str == s {
			return event, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("notification event",
		fmt.Errorf("%q is not a valid notification event", s))
}

// Validate checks if the Event is one of the defined notification events.
func (e Event) Validate() error {
	if e != OrderApproved && e != OrderRejected && e != TrackingUpdated {
		return errs.NewValueIsInvalidErrorWithCause("notification event",
			fmt.Errorf("%d is not a valid notification event", e))
	}
	return nil
}

// String returns the wire name of the event. Implements fmt.Stringer.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}
