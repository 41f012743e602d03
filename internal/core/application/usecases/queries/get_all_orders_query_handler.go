package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the system-wide order listing for the
// back office.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the paged all-orders listing, newest first.
// The total reflects every order in the system, not just the returned page.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&total).Error
	if err != nil {
		return PagedOrdersResponse{}, err
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
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.PageSize(), query.Page()*query.PageSize()).Rows()
	if err != nil {
		return PagedOrdersResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderSummaries(rows)
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	return PagedOrdersResponse{
		Orders:   orders,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}
