package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested purchase position: a product variant and how
// many units of it the buyer wants.
type OrderLine struct {
	VariantID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the buyer and the requested variant/quantity lines; prices
// and royalties are resolved by the handler from the catalog.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	lines := []commands.OrderLine{{VariantID: variantID, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricing, notifier, tracker, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that order and buyer IDs are valid, at least one line is present,
// and every line carries a valid variant ID and a positive quantity.
func NewCreateOrderCommand(orderID kernel.UUID, buyerID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buyer placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.VariantID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
