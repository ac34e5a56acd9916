package order

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          ├──> Rejected
//	          └──> Cancelled
//
// Pending is the only state with outgoing transitions; Approved, Rejected
// and Cancelled are all terminal. An approved order keeps accumulating
// tracking updates, but its status never changes again.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting for a manager decision and
	// may still be cancelled by the buyer.
	Pending

	// Approved indicates a manager accepted the order into production.
	// This is a terminal status for the state machine; production
	// progress is recorded as tracking updates, not status changes.
	Approved

	// Rejected indicates a manager declined the order.
	// This is a final state with no further transitions allowed.
	Rejected

	// Cancelled indicates the buyer withdrew the order while it was
	// still pending. This is a final state with no further transitions.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Approved:      "Approved",
		Rejected:      "Rejected",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing orders from persistence or parsing API filters.
// Returns an error for strings outside the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Approved, Rejected, Cancelled.
// StatusUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "Approved", "Rejected", or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Approved, Rejected and Cancelled are all terminal.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected || s == Cancelled
}

// CanTransitionTo reports whether target is a legal next status.
//
// The only legal transitions are Pending -> Approved, Pending -> Rejected
// and Pending -> Cancelled. Every other combination, including repeating a
// transition that already happened, is rejected so that concurrent callers
// racing on the same order cannot both succeed.
func (s Status) CanTransitionTo(target Status) bool {
	if s != Pending {
		return false
	}
	return target == Approved || target == Rejected || target == Cancelled
}
