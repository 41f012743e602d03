package queries

import (
	"context"

	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderContainsPartnerDesignsQueryHandler answers whether an order includes
// any of a partner's designs.
type OrderContainsPartnerDesignsQueryHandler struct {
	db *gorm.DB
}

// NewOrderContainsPartnerDesignsQueryHandler creates a handler for the
// containment check. Requires a GORM database connection.
func NewOrderContainsPartnerDesignsQueryHandler(db *gorm.DB) OrderContainsPartnerDesignsQueryHandler {
	return OrderContainsPartnerDesignsQueryHandler{db: db}
}

// Handle executes the containment check.
// Returns errs.ObjectNotFoundError when the order does not exist; an
// existing order without the partner's designs yields false, not an error.
func (h OrderContainsPartnerDesignsQueryHandler) Handle(
	ctx context.Context,
	query OrderContainsPartnerDesignsQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)
	`, query.OrderID().String()).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var contains bool
	err = h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM order_items i
			JOIN product_variants v ON v.id = i.variant_id
			JOIN products p ON p.id = v.product_id
			WHERE i.order_id = ? AND p.designer_id = ?
		)
	`, query.OrderID().String(), query.PartnerID().String()).Scan(&contains).Error
	if err != nil {
		return false, err
	}

	return contains, nil
}
