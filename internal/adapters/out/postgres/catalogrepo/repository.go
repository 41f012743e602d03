package catalogrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddProduct saves a new product to the database.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddVariant saves a new product variant to the database.
func (r *GormCatalogRepository) AddVariant(ctx context.Context, aggregate *catalog.Variant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := variantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GetVariant retrieves a product variant by ID.
func (r *GormCatalogRepository) GetVariant(ctx context.Context, id kernel.UUID) (*catalog.Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VariantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("variant", id.String())
		}
		return nil, err
	}

	return variantToDomain(dto)
}
