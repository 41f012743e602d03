package services

import (
	"fmt"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/user"
	"printshop/internal/pkg/errs"
)

// PricedLine is the pricing result for a single order line.
//
// UnitPrice is the product base price plus the variant adjustment;
// LineTotal is UnitPrice * quantity; RoyaltyAmount is the partner's share
// of the whole line, zero when the designer is not a partner.
type PricedLine struct {
	UnitPrice     float64
	LineTotal     float64
	RoyaltyAmount float64
}

// PricingService is a domain service that derives order line prices and
// partner royalties from the catalog and the designer's account.
//
// Pricing rules:
//   - unitPrice = product.basePrice + variant.priceAdjustment
//   - lineTotal = unitPrice * quantity
//   - royaltyAmount = unitPrice * (commissionRate / 100) * quantity,
//     where commissionRate is zero unless the designer is a partner
//
// All amounts are computed once at order creation; callers freeze the
// results on the order items and never recompute them.
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// PriceLine computes the pricing for one order line.
//
// The variant must belong to the product, and the designer must be the
// product's design creator; quantity must be at least 1. Non-partner
// designers yield a royalty of exactly zero, which is a valid result,
// not an error.
func (s PricingService) PriceLine(
	product *catalog.Product,
	variant *catalog.Variant,
	designer *user.User,
	quantity int,
) (PricedLine, error) {
	if err := product.Validate(); err != nil {
		return PricedLine{}, err
	}
	if err := variant.Validate(); err != nil {
		return PricedLine{}, err
	}
	if err := designer.Validate(); err != nil {
		return PricedLine{}, err
	}

	if !variant.ProductID().IsEqual(product.ID()) {
		return PricedLine{}, errs.NewValueIsInvalidErrorWithCause("variant is invalid",
			fmt.Errorf("variant %s does not belong to product %s", variant.ID(), product.ID()))
	}

	if !product.DesignerID().IsEqual(designer.ID()) {
		return PricedLine{}, errs.NewValueIsInvalidErrorWithCause("designer is invalid",
			fmt.Errorf("user %s is not the designer of product %s", designer.ID(), product.ID()))
	}

	if quantity < 1 {
		return PricedLine{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	unitPrice := product.BasePrice() + variant.PriceAdjustment()
	royaltyPercentage := designer.CommissionRateOrZero()

	return PricedLine{
		UnitPrice:     unitPrice,
		LineTotal:     unitPrice * float64(quantity),
		RoyaltyAmount: unitPrice * (royaltyPercentage / 100) * float64(quantity),
	}, nil
}
