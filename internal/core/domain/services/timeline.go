package services

import (
	"garmenttrack/internal/core/domain/model/order"
)

// TimelineStep is one row of the buyer-facing production timeline. Every order
// timeline has exactly eight steps, one per checkpoint in the tracking
// sequence, regardless of how many updates were actually recorded.
//
// A step with a nil Update but Completed=true is a system estimate: the
// production passed this stage but no explicit update was recorded for it
// (e.g. the manager jumped straight to a later checkpoint).
type TimelineStep struct {
	// Checkpoint is the sequence member this step represents.
	Checkpoint order.Checkpoint

	// Completed reports whether production has passed this stage.
	Completed bool

	// Current marks the single step matching the latest recorded update.
	// At most one step in a timeline has Current=true.
	Current bool

	// Update is the recorded tracking update for this checkpoint, or nil
	// when the step's state is derived rather than recorded. When the same
	// checkpoint was recorded more than once, the chronologically latest
	// update wins.
	Update *order.TrackingUpdate
}

// TimelineBuilder is a domain service that projects an order's tracking
// history onto the fixed checkpoint sequence.
//
// The projection is pure: it is recomputed from the stored history on every
// call and persists nothing. Progress is resolved from the chronologically
// latest update, so a late out-of-sequence submission (a re-recorded earlier
// checkpoint with a newer timestamp) moves the visible progress back. That is
// intentional: the timeline shows what the factory last said, not the furthest
// point ever reported.
//
// Business rules:
//   - A timeline always has exactly eight steps in sequence order
//   - A step is completed when its position does not exceed the position of
//     the chronologically latest update's checkpoint
//   - An order with no updates has no completed steps
type TimelineBuilder struct{}

// NewTimelineBuilder creates a new TimelineBuilder instance.
func NewTimelineBuilder() TimelineBuilder {
	return TimelineBuilder{}
}

// Build projects the order's tracking history onto the eight-step timeline.
//
// Returns an error only when the order itself is not properly constructed.
// Orders in any status produce a timeline; non-approved orders simply have
// no updates and therefore no completed steps.
func (b TimelineBuilder) Build(o *order.Order) ([]TimelineStep, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return b.BuildFromHistory(o.TrackingUpdates()), nil
}

// BuildFromHistory projects a raw tracking history onto the timeline without
// going through the aggregate. Used by read-side handlers that load update
// rows directly. The slice order is the insertion order.
func (b TimelineBuilder) BuildFromHistory(updates []order.TrackingUpdate) []TimelineStep {
	progress := -1
	var latest order.TrackingUpdate
	hasLatest := false
	for _, u := range updates {
		if !hasLatest || !u.UpdatedAt().Before(latest.UpdatedAt()) {
			latest = u
			hasLatest = true
		}
	}
	if hasLatest {
		progress = latest.Checkpoint().Index()
	}

	recorded := latestUpdatePerCheckpoint(updates)

	sequence := order.TrackingSequence()
	steps := make([]TimelineStep, 0, len(sequence))
	for _, checkpoint := range sequence {
		step := TimelineStep{
			Checkpoint: checkpoint,
			Completed:  checkpoint.Index() <= progress,
			Current:    hasLatest && checkpoint == latest.Checkpoint(),
		}

		if u, ok := recorded[checkpoint]; ok {
			step.Update = u
		}

		steps = append(steps, step)
	}

	return steps
}

// latestUpdatePerCheckpoint collapses the history to one update per
// checkpoint, keeping the chronologically latest. Ties go to the later
// appended update, matching how the order resolves its latest update.
func latestUpdatePerCheckpoint(updates []order.TrackingUpdate) map[order.Checkpoint]*order.TrackingUpdate {
	result := make(map[order.Checkpoint]*order.TrackingUpdate, len(updates))
	for i := range updates {
		u := updates[i]
		if existing, ok := result[u.Checkpoint()]; ok && u.UpdatedAt().Before(existing.UpdatedAt()) {
			continue
		}
		result[u.Checkpoint()] = &u
	}
	return result
}
