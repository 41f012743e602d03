package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler retrieves a buyer's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order history queries.
// Requires a GORM database connection for query execution.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders placed by the buyer.
// Returns an empty slice when the buyer has no orders; a missing buyer is
// indistinguishable from a buyer without orders in this read model.
// Results are sorted newest first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			total_price,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC
	`, query.BuyerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
