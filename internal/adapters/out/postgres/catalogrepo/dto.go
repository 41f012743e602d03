// Package catalogrepo provides data transfer objects and mapping functions
// for the product catalog: products and their purchasable variants.
package catalogrepo

import (
	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	BasePrice  float64
	DesignerID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents the database structure for persisting product variants.
type VariantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	Size            string
	Color           string
	PriceAdjustment float64
}

// TableName specifies the database table name for variant entities.
func (VariantDTO) TableName() string {
	return "product_variants"
}

func productFromDomain(aggregate *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		BasePrice:  aggregate.BasePrice(),
		DesignerID: aggregate.DesignerID().Bytes(),
	}
}

func variantFromDomain(aggregate *catalog.Variant) VariantDTO {
	return VariantDTO{
		ID:              aggregate.ID().Bytes(),
		ProductID:       aggregate.ProductID().Bytes(),
		Size:            aggregate.Size(),
		Color:           aggregate.Color(),
		PriceAdjustment: aggregate.PriceAdjustment(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	designerID, err := kernel.UUIDFromBytes(dto.DesignerID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, dto.Name, dto.BasePrice, designerID)
}

func variantToDomain(dto VariantDTO) (*catalog.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewVariant(id, productID, dto.Size, dto.Color, dto.PriceAdjustment)
}
