package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves the order history of one buyer, newest first.
//
// Example:
//
//	query, err := NewGetBuyerOrdersQuery(buyerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetBuyerOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for one buyer's order history.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{buyerID: buyerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBuyerOrdersQueryIsNotConstructed if validation fails.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the identifier of the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// OrderSummaryResponse represents one order in a listing read model,
// without its items.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	BuyerID    kernel.UUID
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
