package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderNotifier publishes order lifecycle events to interested consumers
// (buyers, partner fulfillment, back office). Publishing is best effort:
// a failed notification never fails the business transaction.
type OrderNotifier interface {
	// NotifyOrderCreated announces that a new order has been placed.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error

	// NotifyStatusChanged announces an order status change, including who
	// requested it. Actor is nil for changes made by background jobs.
	NotifyStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status, actor *kernel.UUID) error
}

// InteractionTracker records buyer purchase activity for analytics and
// recommendations. Tracking is best effort and must not fail commands.
type InteractionTracker interface {
	// TrackPurchase increments the buyer's purchase counter for each
	// variant in the order.
	TrackPurchase(ctx context.Context, buyerID kernel.UUID, variantIDs []kernel.UUID) error
}
