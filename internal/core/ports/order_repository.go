// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the
// best-effort notification and tracking sinks. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only status history.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Only the
	// mutable attributes (status, updatedAt) change after creation; item
	// membership is immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AddHistoryEntry appends one record to the order status audit trail.
	// History is append-only; there is no update or delete.
	AddHistoryEntry(ctx context.Context, entry order.HistoryEntry) error

	// GetAllInStatusOlderThan retrieves orders sitting in the given status
	// whose last update is before the cutoff. Used by background jobs to
	// find stalled orders.
	GetAllInStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
