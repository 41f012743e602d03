package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a single order line: a product variant, the quantity
// ordered, and the prices computed at creation time. Unit price and royalty
// amount are frozen when the order is created and never recomputed, so later
// catalog price changes do not affect existing orders.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// variantID references the purchased product variant
	variantID kernel.UUID

	// quantity is the number of units ordered (at least 1)
	quantity int

	// unitPrice is basePrice + priceAdjustment at creation time
	unitPrice float64

	// royaltyAmount is the partner royalty for the whole line
	royaltyAmount float64

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new order Item with validation. Prices are supplied by
// the pricing service; the item only guards their basic sanity.
func NewItem(id kernel.UUID, variantID kernel.UUID, quantity int, unitPrice, royaltyAmount float64) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVariantID(variantID),
		item.setQuantity(quantity),
		item.setPrices(unitPrice, royaltyAmount),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// VariantID returns the identifier of the purchased variant.
func (i Item) VariantID() kernel.UUID {
	return i.variantID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price frozen at creation time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// RoyaltyAmount returns the partner royalty for the whole line,
// frozen at creation time. Zero when the designer is not a partner.
func (i Item) RoyaltyAmount() float64 {
	return i.royaltyAmount
}

// LineTotal returns unitPrice * quantity.
func (i Item) LineTotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVariantID(variantID kernel.UUID) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	i.variantID = variantID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrices(unitPrice, royaltyAmount float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}
	if royaltyAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("royaltyAmount is invalid",
			fmt.Errorf("%f is negative", royaltyAmount))
	}
	i.unitPrice = unitPrice
	i.royaltyAmount = royaltyAmount
	return nil
}
