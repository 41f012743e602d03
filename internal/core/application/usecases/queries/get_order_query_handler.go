package queries

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its items from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ObjectNotFoundError when no order with the given ID exists.
// Items are sorted by their ID for consistent output.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var orderID, buyerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			total_price,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&orderID,
		&buyerID,
		&response.TotalPrice,
		&response.Status,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			variant_id,
			quantity,
			unit_price,
			royalty_amount
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var itemID, variantID uuid.UUID

		err = rows.Scan(
			&itemID,
			&variantID,
			&item.Quantity,
			&item.UnitPrice,
			&item.RoyaltyAmount,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.VariantID, err = kernel.UUIDFromBytes(variantID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
