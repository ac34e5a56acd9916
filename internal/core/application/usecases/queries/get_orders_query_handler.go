package queries

import (
	"context"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list from the database.
// Reads denormalized columns straight off the orders table; tracking
// histories are not loaded for the list view.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order list query.
// Results are sorted newest first for the dashboard view.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			code,
			buyer_name,
			product_name,
			quantity,
			price_cents,
			payment_method,
			payment_status,
			status,
			created_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.BuyerID() != nil {
		sql += " AND buyer_id = ?"
		args = append(args, query.BuyerID().String())
	}
	sql += " ORDER BY created_at DESC"

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.BuyerName,
			&resp.ProductName,
			&resp.Quantity,
			&resp.PriceCents,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
