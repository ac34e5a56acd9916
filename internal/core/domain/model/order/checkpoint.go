package order

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
)

// Checkpoint is one stage in the fixed production and delivery sequence that
// every approved order moves through. The catalog is closed: there are exactly
// eight checkpoints and their declaration order defines progress.
//
// Checkpoint is a value object; CheckpointUnknown (0) marks uninitialized or
// invalid values.
type Checkpoint int

const (
	// CheckpointUnknown represents an invalid or undefined checkpoint.
	CheckpointUnknown Checkpoint = iota

	// CuttingCompleted is the first production stage: fabric cut to pattern.
	CuttingCompleted

	// SewingStarted marks the start of assembly on the sewing line.
	SewingStarted

	// Finishing covers trimming, pressing and finishing work.
	Finishing

	// QCChecked marks the quality-control inspection pass.
	QCChecked

	// Packed marks the order packed for shipment.
	Packed

	// Shipped marks hand-off to the carrier.
	Shipped

	// OutForDelivery marks the last-mile delivery leg.
	OutForDelivery

	// Delivered is the final checkpoint; no further advancement exists.
	Delivered
)

// getCheckpointStrings returns the display names of all checkpoints,
// including the invalid zero value.
func getCheckpointStrings() map[Checkpoint]string {
	return map[Checkpoint]string{
		CheckpointUnknown: "Unknown",
		CuttingCompleted:  "Cutting Completed",
		SewingStarted:     "Sewing Started",
		Finishing:         "Finishing",
		QCChecked:         "QC Checked",
		Packed:            "Packed",
		Shipped:           "Shipped",
		OutForDelivery:    "Out for Delivery",
		Delivered:         "Delivered",
	}
}

// TrackingSequence returns the eight checkpoints in production order.
// The returned slice is a fresh copy on every call.
func TrackingSequence() []Checkpoint {
	return []Checkpoint{
		CuttingCompleted,
		SewingStarted,
		Finishing,
		QCChecked,
		Packed,
		Shipped,
		OutForDelivery,
		Delivered,
	}
}

// CheckpointFromString parses a checkpoint from its display name.
// Any string outside the fixed eight-member sequence fails with an
// InvalidCheckpointError; the catalog accepts no dynamic stages.
func CheckpointFromString(s string) (Checkpoint, error) {
	for _, c := range TrackingSequence() {
		if c.String() == s {
			return c, nil
		}
	}
	return CheckpointUnknown, errs.NewInvalidCheckpointError(s)
}

// Validate checks if the Checkpoint is one of the eight sequence members.
// Returns an InvalidCheckpointError otherwise.
func (c Checkpoint) Validate() error {
	if c < CuttingCompleted || c > Delivered {
		return errs.NewInvalidCheckpointErrorWithCause(c.String(),
			fmt.Errorf("%d is not a valid checkpoint", c))
	}
	return nil
}

// String returns the display name of the checkpoint, e.g. "QC Checked".
// Invalid values return "Unknown". Implements fmt.Stringer.
func (c Checkpoint) String() string {
	if str, ok := getCheckpointStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Index returns the zero-based position of the checkpoint within the
// tracking sequence, or -1 for invalid values.
func (c Checkpoint) Index() int {
	if c.Validate() != nil {
		return -1
	}
	return int(c - CuttingCompleted)
}

// IsFinal reports whether the checkpoint is the last one in the sequence.
func (c Checkpoint) IsFinal() bool {
	return c == Delivered
}

// Next returns the checkpoint that follows c in the sequence.
// The second return value is false when c is the final checkpoint or invalid.
func (c Checkpoint) Next() (Checkpoint, bool) {
	if c.Validate() != nil || c.IsFinal() {
		return CheckpointUnknown, false
	}
	return c + 1, true
}
