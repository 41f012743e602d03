package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Carries optional free-form notes for the audit trail and
// an optional actor; a nil actor marks the change as made by the system.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Shipped, "left warehouse", &adminID)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	notes   string
	actorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the order ID, the target status, and the actor ID when present.
// Whether the transition itself is allowed is decided by the order aggregate
// in the handler.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	notes string,
	actorID *kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setActorID(actorID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Notes returns the free-form audit notes, possibly empty.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// ActorID returns who requested the change, nil for system-initiated updates.
func (c UpdateOrderStatusCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID *kernel.UUID) error {
	if actorID == nil {
		return nil
	}

	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
