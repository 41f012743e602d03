package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrOrderContainsPartnerDesignsQueryIsNotConstructed = errors.New(
	"OrderContainsPartnerDesignsQuery must be created via NewOrderContainsPartnerDesignsQuery constructor",
)

// OrderContainsPartnerDesignsQuery checks whether an order includes at least
// one item based on one of the partner's designs. Used by partner-facing
// views to decide whether an order concerns them.
type OrderContainsPartnerDesignsQuery struct {
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderContainsPartnerDesignsQuery creates the containment check query.
func NewOrderContainsPartnerDesignsQuery(orderID, partnerID kernel.UUID) (OrderContainsPartnerDesignsQuery, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return OrderContainsPartnerDesignsQuery{}, err
	}

	return OrderContainsPartnerDesignsQuery{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderContainsPartnerDesignsQueryIsNotConstructed if validation fails.
func (q OrderContainsPartnerDesignsQuery) Validate() error {
	return q.guard.Validate(ErrOrderContainsPartnerDesignsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to inspect.
func (q OrderContainsPartnerDesignsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PartnerID returns the identifier of the partner designer.
func (q OrderContainsPartnerDesignsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
