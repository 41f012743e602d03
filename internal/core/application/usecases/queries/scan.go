package queries

import (
	"database/sql"

	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanOrderSummaries reads order listing rows produced by the shared
// id/buyer_id/total_price/status/created_at/updated_at projection.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var orderID, buyerID uuid.UUID

		err := rows.Scan(
			&orderID,
			&buyerID,
			&summary.TotalPrice,
			&summary.Status,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if summary.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
