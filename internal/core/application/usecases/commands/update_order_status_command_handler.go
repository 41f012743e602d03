package commands

import (
	"context"
	"log/slog"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// The aggregate enforces the transition table; every accepted change,
// including a same-status no-op, appends one entry to the audit trail.
// After the transaction commits, a status changed event is published
// best effort.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Cancelled, "buyer request", &buyerID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidStatusTransition) {
//	    // transition not allowed from the current status
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
// Requires an OrderUoWFactory for transactional persistence and the event notifier.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
// Returns errs.ObjectNotFoundError when the order does not exist and an
// error wrapping order.ErrInvalidStatusTransition when the transition table
// forbids the move. The status change and the history entry are persisted
// in a single transaction.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := order.NewHistoryEntry(kernel.NewUUID(), aggregate.ID(), aggregate.Status(), cmd.Notes(), cmd.ActorID())
	if err != nil {
		return err
	}

	if err = orderRepo.AddHistoryEntry(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyStatusChanged(ctx, aggregate, previous, cmd.ActorID()); err != nil {
		h.logger.WarnContext(ctx, "status changed notification failed",
			"order_id", aggregate.ID(), "status", aggregate.Status(), "error", err)
	}

	return nil
}
