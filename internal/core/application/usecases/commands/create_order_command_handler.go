package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the buyer, prices every line against the catalog, and freezes unit
// prices and partner royalties on the order items. After the transaction
// commits, a created event is published and the purchase interaction is
// tracked, both best effort.
//
// Creation writes no history entry; the audit trail records status
// transitions only, so the first entry for an order appears with its first
// status update.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, notifier, tracker, logger)
//	cmd, _ := NewCreateOrderCommand(orderID, buyerID, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted in PENDING status
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingService
	notifier   ports.OrderNotifier
	tracker    ports.InteractionTracker
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for transactional persistence, the pricing domain
// service, and the notification/tracking sinks.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingService,
	notifier ports.OrderNotifier,
	tracker ports.InteractionTracker,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
		tracker:    tracker,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command.
// Every line is resolved to its variant, product, and designer before
// pricing; a missing buyer, variant, or product surfaces as an
// errs.ObjectNotFoundError. The order and its items are persisted in a
// single transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()
	catalogRepo := uow.CatalogRepository()

	if _, err := userRepo.Get(ctx, cmd.BuyerID()); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		variant, err := catalogRepo.GetVariant(ctx, line.VariantID)
		if err != nil {
			return err
		}

		product, err := catalogRepo.GetProduct(ctx, variant.ProductID())
		if err != nil {
			return err
		}

		designer, err := userRepo.Get(ctx, product.DesignerID())
		if err != nil {
			return err
		}

		priced, err := h.pricing.PriceLine(product, variant, designer, line.Quantity)
		if err != nil {
			return err
		}

		item, err := order.NewItem(kernel.NewUUID(), line.VariantID, line.Quantity, priced.UnitPrice, priced.RoyaltyAmount)
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.BuyerID(), items)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishCreated(ctx, aggregate, cmd)

	return nil
}

// publishCreated emits the created event and the purchase interaction.
// Failures here never fail the command; the order is already committed.
func (h CreateOrderCommandHandler) publishCreated(ctx context.Context, aggregate *order.Order, cmd CreateOrderCommand) {
	if err := h.notifier.NotifyOrderCreated(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "order created notification failed",
			"order_id", aggregate.ID(), "error", err)
	}

	variantIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		variantIDs = append(variantIDs, line.VariantID)
	}

	if err := h.tracker.TrackPurchase(ctx, cmd.BuyerID(), variantIDs); err != nil {
		h.logger.WarnContext(ctx, "purchase tracking failed",
			"order_id", aggregate.ID(), "buyer_id", cmd.BuyerID(), "error", err)
	}
}
