package catalog

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrVariantIsNotConstructed is returned when a Variant instance was not
	// created through the NewVariant factory method.
	ErrVariantIsNotConstructed = errors.New("Variant must be created via NewVariant constructor")
)

// Variant represents a purchasable size/color combination of a Product,
// carrying its own price adjustment. There is no stock tracking: in a
// print-on-demand model every variant is always available.
//
// The price adjustment may be negative (a discounted variant), the effective
// item price is basePrice + priceAdjustment.
type Variant struct {
	// id is the unique identifier for the variant
	id kernel.UUID

	// productID references the owning product
	productID kernel.UUID

	size  string
	color string

	// priceAdjustment is added to the product base price
	priceAdjustment float64

	// isConstructed ensures the variant was created via NewVariant
	isConstructed bool
}

// NewVariant creates a new Variant instance with validation. This is the only
// way to create a valid Variant.
func NewVariant(id kernel.UUID, productID kernel.UUID, size, color string, priceAdjustment float64) (*Variant, error) {
	variant := &Variant{
		isConstructed: true,
	}

	if err := errors.Join(
		variant.setID(id),
		variant.setProductID(productID),
		variant.setSize(size),
		variant.setColor(color),
	); err != nil {
		return nil, err
	}

	variant.priceAdjustment = priceAdjustment
	return variant, nil
}

// Validate ensures the Variant instance was properly constructed through NewVariant.
func (v *Variant) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVariantIsNotConstructed
	}
	return nil
}

// ID returns the variant's unique identifier.
func (v *Variant) ID() kernel.UUID {
	return v.id
}

// ProductID returns the identifier of the owning product.
func (v *Variant) ProductID() kernel.UUID {
	return v.productID
}

// Size returns the size label, e.g. "M" or "XL".
func (v *Variant) Size() string {
	return v.size
}

// Color returns the color label.
func (v *Variant) Color() string {
	return v.color
}

// PriceAdjustment returns the amount added to the product base price.
func (v *Variant) PriceAdjustment() float64 {
	return v.priceAdjustment
}

func (v *Variant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Variant) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	v.productID = productID
	return nil
}

func (v *Variant) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	v.size = size
	return nil
}

func (v *Variant) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	v.color = color
	return nil
}
