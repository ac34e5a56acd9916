package orderrepo

import (
	"context"
	"errors"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its tracking history
// (empty at placement; GORM inserts any association rows alongside the order).
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
//
// The write is guarded by the status the caller loaded the order in: the row
// is updated only while it still carries expectedStatus. When two actors race
// to decide the same pending order, the first commit flips the status and the
// second write matches zero rows, surfacing as an InvalidTransitionError
// against the status the winner left behind.
//
// Tracking updates are append-only; rows already persisted are never
// rewritten, only the history's new tail is inserted.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyConflict(ctx, aggregate)
	}

	if err := r.appendTrackingUpdates(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyConflict resolves why a guarded update matched no rows: either the
// order does not exist, or a concurrent writer already changed its status.
func (r *GormOrderRepository) classifyConflict(ctx context.Context, aggregate *order.Order) error {
	var current string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewInvalidTransitionError(aggregate.ID().String(), current, aggregate.Status().String())
}

// appendTrackingUpdates inserts the history rows the database does not have
// yet. The persisted prefix is immutable, so counting rows is enough to find
// where the new tail starts.
func (r *GormOrderRepository) appendTrackingUpdates(ctx context.Context, aggregate *order.Order) error {
	var persisted int64
	err := r.db.WithContext(ctx).Model(&TrackingUpdateDTO{}).
		Where("order_id = ?", aggregate.ID().Bytes()).
		Count(&persisted).Error
	if err != nil {
		return err
	}

	updates := aggregate.TrackingUpdates()
	if int(persisted) >= len(updates) {
		return nil
	}

	tail := make([]TrackingUpdateDTO, 0, len(updates)-int(persisted))
	for _, u := range updates[persisted:] {
		tail = append(tail, trackingUpdateFromDomain(aggregate.ID(), u))
	}

	return r.db.WithContext(ctx).Create(&tail).Error
}

// Get retrieves an order by ID, including its full tracking history in
// insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloadHistory(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its buyer-facing code, including its full
// tracking history in insertion order.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloadHistory(ctx).First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// preloadHistory returns a query with the tracking history preloaded in
// insertion order, the order the domain expects for tie-breaking.
func (r *GormOrderRepository) preloadHistory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("TrackingUpdates", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}
