package order

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderItemsAreRequired is returned when an order is created without
	// any line items.
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// Order represents a print-on-demand purchase. It is the aggregate root that
// manages the order lifecycle from creation through payment, production, and
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and buyer reference
//   - Must contain at least one item; item membership is immutable after
//     creation (no adding or removing lines later)
//   - Total price is the sum of line totals, computed once at creation and
//     never recomputed
//   - Status transitions follow the state machine defined by Status
//   - updatedAt advances on every accepted status change
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID references the purchasing user; immutable after creation
	buyerID kernel.UUID

	// items are the order lines; membership is frozen at creation
	items []Item

	// totalPrice is the sum of line totals, frozen at creation
	totalPrice float64

	// status represents the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the current timestamp.
// This is the only way to create a fresh order, ensuring all business
// invariants are maintained.
//
// The total price is computed here as the sum of the items' line totals and
// is never recomputed afterwards.
func NewOrder(id kernel.UUID, buyerID kernel.UUID, items []Item) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totalPrice = sumLineTotals(order.items)
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status,
// total, and timestamps. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	items []Item,
	totalPrice float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if totalPrice < 0 {
		return nil, errs.NewValueIsInvalidError("totalPrice is invalid")
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Items returns a copy of the order lines. Mutating the returned slice does
// not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the order total frozen at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order status last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to the requested status.
//
// This method enforces the state machine defined by Status: the transition
// must be permitted from the current state, and a same-status request is
// accepted as a no-op that still advances updatedAt. Terminal states
// (Cancelled, Refunded) reject every other request.
//
// Returns an error wrapping ErrInvalidStatusTransition, naming both states,
// when the transition is not allowed.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumLineTotals(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
