package order

import (
	"strings"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

// ErrTrackingUpdateIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingUpdate. Updates must be created via
// NewTrackingUpdate or RestoreTrackingUpdate.
var ErrTrackingUpdateIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking update must be created via NewTrackingUpdate or RestoreTrackingUpdate constructors")

// TrackingUpdate is a single timestamped event recording that an order reached
// a production checkpoint. Updates are immutable once created and the order's
// history is append-only: past updates are never edited or removed.
//
// The checkpoint of an update is not required to advance monotonically; a
// manager may record a checkpoint earlier in the sequence than the previous
// one (e.g. a re-run QC check). The derived timeline resolves progress from
// the chronologically latest update, not from submission order.
type TrackingUpdate struct { //nolint:recvcheck //using for validation
	checkpoint Checkpoint
	location   string
	note       string
	updatedBy  kernel.UUID
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewTrackingUpdate creates a validated tracking update.
//
// Validation rules:
//   - checkpoint must be one of the eight sequence members (InvalidCheckpointError)
//   - location is required and may not be blank (ValueIsRequiredError)
//   - updatedBy must be a constructed actor id
//   - updatedAt must be a real timestamp, not the zero value (ValueIsInvalidError)
//
// The note is optional free text.
func NewTrackingUpdate(
	checkpoint Checkpoint,
	location string,
	note string,
	updatedBy kernel.UUID,
	updatedAt time.Time,
) (TrackingUpdate, error) {
	if err := checkpoint.Validate(); err != nil {
		return TrackingUpdate{}, err
	}
	if strings.TrimSpace(location) == "" {
		return TrackingUpdate{}, errs.NewValueIsRequiredError("location")
	}
	if err := updatedBy.Validate(); err != nil {
		return TrackingUpdate{}, err
	}
	if updatedAt.IsZero() {
		return TrackingUpdate{}, errs.NewValueIsInvalidError("updatedAt")
	}

	return TrackingUpdate{
		checkpoint: checkpoint,
		location:   location,
		note:       note,
		updatedBy:  updatedBy,
		updatedAt:  updatedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrackingUpdate reconstructs a tracking update from persistence.
// Applies the same validation as NewTrackingUpdate; stored rows that fail
// validation indicate corrupted data and surface as errors.
func RestoreTrackingUpdate(
	checkpoint Checkpoint,
	location string,
	note string,
	updatedBy kernel.UUID,
	updatedAt time.Time,
) (TrackingUpdate, error) {
	return NewTrackingUpdate(checkpoint, location, note, updatedBy, updatedAt)
}

// Validate checks the update was created through a constructor.
func (u TrackingUpdate) Validate() error {
	return u.guard.Validate(ErrTrackingUpdateIsNotConstructed)
}

// Checkpoint returns the production checkpoint this update records.
func (u TrackingUpdate) Checkpoint() Checkpoint {
	return u.checkpoint
}

// Location returns where the checkpoint was recorded (factory, warehouse, city).
func (u TrackingUpdate) Location() string {
	return u.location
}

// Note returns the optional free-text note attached to the update.
func (u TrackingUpdate) Note() string {
	return u.note
}

// UpdatedBy returns the id of the actor who recorded the update.
// Kept for auditing; it has no effect on state machine behavior.
func (u TrackingUpdate) UpdatedBy() kernel.UUID {
	return u.updatedBy
}

// UpdatedAt returns when the checkpoint was reached (UTC).
func (u TrackingUpdate) UpdatedAt() time.Time {
	return u.updatedAt
}
