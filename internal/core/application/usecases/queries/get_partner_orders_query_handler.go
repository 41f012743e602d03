package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler retrieves the orders that contain a partner's
// designs. An order qualifies when at least one of its items refers to a
// variant of a product created by the partner.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order listings.
// Requires a GORM database connection for query execution.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the paged partner order listing.
// Orders are counted once even when several items reference the partner's
// designs. Results are sorted newest first; the total reflects all matching
// orders, not just the returned page.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	partnerID := query.PartnerID().String()

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT o.id)
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN product_variants v ON v.id = i.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE p.designer_id = ?
	`, partnerID).Scan(&total).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			o.id,
			o.buyer_id,
			o.total_price,
			o.status,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN product_variants v ON v.id = i.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE p.designer_id = ?
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, partnerID, query.PageSize(), query.Page()*query.PageSize()).Rows()
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
