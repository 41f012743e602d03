package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

// SystemActorName is rendered as the actor of history entries recorded
// without a user, such as scheduled job cancellations.
const SystemActorName = "System"

// GetOrderStatusHistoryQuery retrieves the audit trail of one order,
// newest first.
//
// Example:
//
//	query, err := NewGetOrderStatusHistoryQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderStatusHistoryQueryHandler(db)
//	entries, err := handler.Handle(ctx, query)
//	for _, entry := range entries {
//	    fmt.Printf("%s -> %s by %s\n", entry.CreatedAt, entry.Status, entry.UpdatedBy)
//	}
type GetOrderStatusHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusHistoryQuery creates a query for one order's status history.
func NewGetOrderStatusHistoryQuery(orderID kernel.UUID) (GetOrderStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, err
	}

	return GetOrderStatusHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetOrderStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StatusHistoryEntryResponse represents one audit trail record in the read
// model. UpdatedBy carries the full name of the user who made the change, or
// SystemActorName when the change was system-initiated.
type StatusHistoryEntryResponse struct {
	ID        kernel.UUID
	Status    string
	Notes     string
	UpdatedBy string
	CreatedAt time.Time
}
