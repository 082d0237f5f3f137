package repository

import (
	"context"

	"agro-registry/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository defines data access for organizations
type OrganizationRepository interface {
	Repository[model.Organization]
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	base := newCRUDRepository[model.Organization](db)
	base.cascade = cascadeOrganization
	return base
}

// PropertyQuery filters properties. Nil fields are ignored.
type PropertyQuery struct {
	OrganizationID *uuid.UUID
}

// PropertyRepository defines data access for properties
type PropertyRepository interface {
	Repository[model.Property]
	Query(ctx context.Context, q PropertyQuery) ([]model.Property, error)
}

type propertyRepository struct {
	*crudRepository[model.Property]
}

// NewPropertyRepository creates a new property repository. Listings and
// single lookups join the owning organization.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	base := newCRUDRepository[model.Property](db)
	withOrg := preloadRef("Organization", "id", "name")
	base.listScopes = []scope{withOrg}
	base.getScopes = []scope{withOrg}
	base.cascade = cascadeProperty
	return &propertyRepository{crudRepository: base}
}

// Query returns properties matching q without joins
func (r *propertyRepository) Query(ctx context.Context, q PropertyQuery) ([]model.Property, error) {
	tx := r.db.WithContext(ctx)
	if q.OrganizationID != nil {
		tx = tx.Where("organization_id = ?", *q.OrganizationID)
	}

	list := make([]model.Property, 0)
	if err := tx.Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RegionRepository defines data access for regions
type RegionRepository interface {
	Repository[model.Region]
	FindParentID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	HasSubRegions(ctx context.Context, id uuid.UUID) (bool, error)
}

type regionRepository struct {
	*crudRepository[model.Region]
}

// NewRegionRepository creates a new region repository. Listings join the
// parent region and the direct sub-regions.
func NewRegionRepository(db *gorm.DB) RegionRepository {
	base := newCRUDRepository[model.Region](db)
	base.listScopes = []scope{
		preloadRef("ParentRegion", "id", "name"),
		preloadRef("SubRegions", "id", "name", "parent_region_id"),
	}
	base.cascade = cascadeRegion
	return &regionRepository{crudRepository: base}
}

// FindParentID returns the parent of the region, or nil for a root region
func (r *regionRepository) FindParentID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		ParentRegionID *uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Model(&model.Region{}).
		Select("parent_region_id").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.ParentRegionID, nil
}

// HasSubRegions reports whether any region names id as its parent
func (r *regionRepository) HasSubRegions(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Region{}).
		Where("parent_region_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FieldRepository defines data access for fields
type FieldRepository interface {
	Repository[model.Field]
}

// NewFieldRepository creates a new field repository
func NewFieldRepository(db *gorm.DB) FieldRepository {
	base := newCRUDRepository[model.Field](db)
	base.cascade = cascadeField
	return base
}

// CropRepository defines data access for crops
type CropRepository interface {
	Repository[model.Crop]
}

// NewCropRepository creates a new crop repository
func NewCropRepository(db *gorm.DB) CropRepository {
	base := newCRUDRepository[model.Crop](db)
	base.cascade = cascadeCrop
	return base
}

// CropCycleRepository defines data access for crop cycles
type CropCycleRepository interface {
	Repository[model.CropCycle]
}

// NewCropCycleRepository creates a new crop cycle repository. Listings join
// the crop, the property and the field.
func NewCropCycleRepository(db *gorm.DB) CropCycleRepository {
	base := newCRUDRepository[model.CropCycle](db)
	base.listScopes = []scope{
		preloadRef("Crop", "id", "name"),
		preloadRef("Property", "id", "name"),
		preloadRef("Field", "id", "name"),
	}
	return &cropCycleRepository{crudRepository: base}
}

type cropCycleRepository struct {
	*crudRepository[model.CropCycle]
}
