// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Buyer and product snapshots are denormalized into prefixed columns so the
// read side can serve list views without joins. Statuses, payment fields and
// checkpoints are stored as their wire names rather than enum ordinals, which
// keeps the rows readable and lets the status column double as the optimistic
// concurrency guard in Update.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code          string     `gorm:"uniqueIndex;size:11"`
	Buyer         BuyerDTO   `gorm:"embedded;embeddedPrefix:buyer_"`
	Product       ProductDTO `gorm:"embedded;embeddedPrefix:product_"`
	Quantity      int
	PriceCents    int64
	PaymentMethod string
	PaymentStatus string
	Status        string `gorm:"index"`
	CreatedAt     time.Time
	ApprovedAt    *time.Time
	CancelledAt   *time.Time

	TrackingUpdates []TrackingUpdateDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// BuyerDTO represents the embedded buyer snapshot within the order table.
type BuyerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// ProductDTO represents the embedded product snapshot within the order table.
// Images use a native Postgres text array rather than a join table; the
// snapshot is immutable so the array is written once and only ever read.
type ProductDTO struct {
	ID               uuid.UUID `gorm:"type:uuid"`
	Name             string
	Category         string
	UnitPriceCents   int64
	MinOrderQuantity int
	Images           pq.StringArray `gorm:"type:text[]"`
}

// TrackingUpdateDTO represents one row of an order's production history.
// The serial primary key preserves insertion order, which the domain relies
// on to break timestamp ties between updates.
type TrackingUpdateDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Checkpoint string
	Location   string
	Note       string
	UpdatedBy  uuid.UUID `gorm:"type:uuid"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for tracking update rows.
func (TrackingUpdateDTO) TableName() string {
	return "order_tracking_updates"
}

// fromDomain converts an order domain aggregate to its database representation,
// including the full tracking history in insertion order.
func fromDomain(aggregate *order.Order) OrderDTO {
	buyer := aggregate.Buyer()
	product := aggregate.Product()

	updates := aggregate.TrackingUpdates()
	updateDTOs := make([]TrackingUpdateDTO, 0, len(updates))
	for _, u := range updates {
		updateDTOs = append(updateDTOs, trackingUpdateFromDomain(aggregate.ID(), u))
	}

	return OrderDTO{
		ID:   aggregate.ID().Bytes(),
		Code: aggregate.Code().String(),
		Buyer: BuyerDTO{
			ID:      buyer.ID().Bytes(),
			Name:    buyer.Name(),
			Email:   buyer.Email(),
			Phone:   buyer.Phone(),
			Address: buyer.Address(),
			Notes:   buyer.Notes(),
		},
		Product: ProductDTO{
			ID:               product.ID().Bytes(),
			Name:             product.Name(),
			Category:         product.Category(),
			UnitPriceCents:   product.UnitPrice().Cents(),
			MinOrderQuantity: product.MinOrderQuantity(),
			Images:           product.Images(),
		},
		Quantity:        aggregate.Quantity(),
		PriceCents:      aggregate.Price().Cents(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		ApprovedAt:      aggregate.ApprovedAt(),
		CancelledAt:     aggregate.CancelledAt(),
		TrackingUpdates: updateDTOs,
	}
}

// trackingUpdateFromDomain converts a single tracking update to its row form.
// The serial id is left zero and assigned by the database on insert.
func trackingUpdateFromDomain(orderID kernel.UUID, u order.TrackingUpdate) TrackingUpdateDTO {
	return TrackingUpdateDTO{
		OrderID:    orderID.Bytes(),
		Checkpoint: u.Checkpoint().String(),
		Location:   u.Location(),
		Note:       u.Note(),
		UpdatedBy:  u.UpdatedBy().Bytes(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, including snapshots and tracking
// history, using RestoreOrder. Rows that fail domain validation surface as
// errors rather than producing a partially valid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.Buyer.ID[:])
	if err != nil {
		return nil, err
	}
	buyer, err := order.NewBuyer(
		buyerID,
		dto.Buyer.Name,
		dto.Buyer.Email,
		dto.Buyer.Phone,
		dto.Buyer.Address,
		dto.Buyer.Notes,
	)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.Product.ID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.Product.UnitPriceCents)
	if err != nil {
		return nil, err
	}
	product, err := order.NewProductSnapshot(
		productID,
		dto.Product.Name,
		dto.Product.Category,
		unitPrice,
		dto.Product.MinOrderQuantity,
		dto.Product.Images,
	)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	updates := make([]order.TrackingUpdate, 0, len(dto.TrackingUpdates))
	for _, row := range dto.TrackingUpdates {
		u, updateErr := trackingUpdateToDomain(row)
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, u)
	}

	return order.RestoreOrder(
		id,
		code,
		buyer,
		product,
		dto.Quantity,
		price,
		paymentMethod,
		paymentStatus,
		status,
		dto.CreatedAt,
		dto.ApprovedAt,
		dto.CancelledAt,
		updates,
	)
}

// trackingUpdateToDomain converts a history row back to its domain value.
func trackingUpdateToDomain(dto TrackingUpdateDTO) (order.TrackingUpdate, error) {
	checkpoint, err := order.CheckpointFromString(dto.Checkpoint)
	if err != nil {
		return order.TrackingUpdate{}, err
	}

	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return order.TrackingUpdate{}, err
	}

	return order.RestoreTrackingUpdate(checkpoint, dto.Location, dto.Note, updatedBy, dto.UpdatedAt)
}
