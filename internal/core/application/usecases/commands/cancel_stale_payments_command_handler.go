package commands

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// CancelStalePaymentsCommandHandler cancels orders whose payment window has
// expired. Each stale order goes through the regular status transition path,
// so the cancellation is audited like any other change, with a nil actor
// recording it as system-initiated.
type CancelStalePaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewCancelStalePaymentsCommandHandler creates a handler for the stale
// payment cancellation job.
func NewCancelStalePaymentsCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) CancelStalePaymentsCommandHandler {
	return CancelStalePaymentsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_stale_payments_handler"),
	}
}

// Handle processes the cancellation command.
// Finds orders in PENDING_PAYMENT updated before now minus the command's
// max age, moves each to CANCELLED, and appends a history entry. All
// cancellations commit in a single transaction; notifications go out after
// commit, best effort.
func (h CancelStalePaymentsCommandHandler) Handle(ctx context.Context, cmd CancelStalePaymentsCommand) error {
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

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllInStatusOlderThan(ctx, order.PendingPayment, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.ChangeStatus(order.Cancelled); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		entry, entryErr := order.NewHistoryEntry(
			kernel.NewUUID(), aggregate.ID(), order.Cancelled, "Payment window expired", nil)
		if entryErr != nil {
			return entryErr
		}

		if err = orderRepo.AddHistoryEntry(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range staleOrders {
		if err = h.notifier.NotifyStatusChanged(ctx, aggregate, order.PendingPayment, nil); err != nil {
			h.logger.WarnContext(ctx, "cancellation notification failed",
				"order_id", aggregate.ID(), "error", err)
		}
	}

	if len(staleOrders) > 0 {
		h.logger.InfoContext(ctx, "cancelled stale unpaid orders", "count", len(staleOrders))
	}

	return nil
}
