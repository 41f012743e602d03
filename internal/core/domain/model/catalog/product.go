package catalog

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a printable catalog item carrying a base price and the
// design printed on it. The designer reference identifies the user who created
// the design and is the basis for royalty attribution on orders.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Base price must not be negative
//   - Designer reference must be a valid identifier
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name of the product
	name string

	// basePrice is the price before any variant adjustment
	basePrice float64

	// designerID references the user whose design is printed on the product
	designerID kernel.UUID

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a new Product instance with validation. This is the only
// way to create a valid Product.
func NewProduct(id kernel.UUID, name string, basePrice float64, designerID kernel.UUID) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setBasePrice(basePrice),
		product.setDesignerID(designerID),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// BasePrice returns the price before variant adjustment.
func (p *Product) BasePrice() float64 {
	return p.basePrice
}

// DesignerID returns the identifier of the user who created the printed design.
func (p *Product) DesignerID() kernel.UUID {
	return p.designerID
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice is invalid",
			fmt.Errorf("%f is negative", basePrice))
	}
	p.basePrice = basePrice
	return nil
}

func (p *Product) setDesignerID(designerID kernel.UUID) error {
	if err := designerID.Validate(); err != nil {
		return err
	}
	p.designerID = designerID
	return nil
}
