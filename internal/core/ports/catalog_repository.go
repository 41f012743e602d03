package ports

import (
	"context"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for the product
// catalog: products and their purchasable variants.
type CatalogRepository interface {
	// AddProduct persists a new product aggregate.
	AddProduct(ctx context.Context, aggregate *catalog.Product) error

	// AddVariant persists a new variant of an existing product.
	AddVariant(ctx context.Context, aggregate *catalog.Variant) error

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetVariant retrieves a variant by its unique identifier.
	GetVariant(ctx context.Context, id kernel.UUID) (*catalog.Variant, error)
}
