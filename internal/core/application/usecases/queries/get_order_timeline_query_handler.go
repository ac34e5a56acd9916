package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/core/domain/services"
	"garmenttrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler builds the production timeline view for one
// order. Loads the order header and its tracking history with raw SQL, then
// projects the history onto the fixed checkpoint sequence.
type GetOrderTimelineQueryHandler struct {
	db      *gorm.DB
	builder services.TimelineBuilder
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{
		db:      db,
		builder: services.NewTimelineBuilder(),
	}
}

// Handle executes the timeline query.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) (GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	var code, status string
	row := h.db.WithContext(ctx).Raw(`
		SELECT code, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()
	if err := row.Scan(&code, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderTimelineQueryResponse{},
				errs.NewObjectNotFoundErrorWithCause("orderID", query.OrderID().String(), err)
		}
		return GetOrderTimelineQueryResponse{}, err
	}

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	steps := h.builder.BuildFromHistory(history)

	resp := GetOrderTimelineQueryResponse{
		OrderID: query.OrderID(),
		Code:    code,
		Status:  status,
		Steps:   make([]TimelineStepResponse, 0, len(steps)),
	}
	for _, step := range steps {
		stepResp := TimelineStepResponse{
			Checkpoint: step.Checkpoint.String(),
			Completed:  step.Completed,
			Current:    step.Current,
		}
		if step.Update != nil {
			location := step.Update.Location()
			note := step.Update.Note()
			updatedBy := step.Update.UpdatedBy()
			updatedAt := step.Update.UpdatedAt()
			stepResp.Location = &location
			stepResp.Note = &note
			stepResp.UpdatedBy = &updatedBy
			stepResp.UpdatedAt = &updatedAt
		}
		resp.Steps = append(resp.Steps, stepResp)
	}

	return resp, nil
}

// loadHistory reads the tracking updates for the order in insertion order.
func (h GetOrderTimelineQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.TrackingUpdate, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			checkpoint,
			location,
			note,
			updated_by,
			updated_at
		FROM order_tracking_updates
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]order.TrackingUpdate, 0)
	for rows.Next() {
		var checkpointStr, location, note string
		var updatedBy uuid.UUID
		var updatedAt time.Time

		if err = rows.Scan(&checkpointStr, &location, &note, &updatedBy, &updatedAt); err != nil {
			return nil, err
		}

		checkpoint, cpErr := order.CheckpointFromString(checkpointStr)
		if cpErr != nil {
			return nil, cpErr
		}
		actorID, idErr := kernel.UUIDFromBytes(updatedBy[:])
		if idErr != nil {
			return nil, idErr
		}

		update, restoreErr := order.RestoreTrackingUpdate(checkpoint, location, note, actorID, updatedAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		history = append(history, update)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
