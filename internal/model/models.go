package model

import (
	"errors"
	"time"

	"agro-registry/internal/geometry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCropCycleTarget is returned when a crop cycle is attached to both or
// neither of a field and a property.
var ErrCropCycleTarget = errors.New("either fieldId or propertyId must be provided")

// Base holds the identifier and timestamps shared by every entity
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random UUID when none was provided
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Organization is the top-level owner of properties
type Organization struct {
	Base

	Name    string `gorm:"not null;size:100" json:"name"`
	Country string `gorm:"not null;size:100" json:"country"`
}

// TableName specifies the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// Property is a farm or estate owned by an organization
type Property struct {
	Base

	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizationId"`
	Name           string    `gorm:"not null;size:100" json:"name"`

	// Relationships
	Organization *OrganizationRef `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}

// Region is an area of a property. Regions nest through ParentRegionID.
type Region struct {
	Base

	PropertyID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"propertyId"`
	ParentRegionID *uuid.UUID       `gorm:"type:uuid;index" json:"parentRegionId"`
	Name           string           `gorm:"not null;size:100" json:"name"`
	Geometry       geometry.Polygon `gorm:"not null" json:"geometry"`
	Area           float64          `gorm:"not null" json:"area"`

	// Relationships
	ParentRegion *RegionRef    `gorm:"foreignKey:ParentRegionID" json:"parentRegion,omitempty"`
	SubRegions   []SubRegionRef `gorm:"foreignKey:ParentRegionID" json:"subRegions,omitempty"`
}

// TableName specifies the table name for Region
func (Region) TableName() string {
	return "regions"
}

// Field is a cultivated plot inside a region
type Field struct {
	Base

	RegionID uuid.UUID        `gorm:"type:uuid;not null;index" json:"regionId"`
	Name     string           `gorm:"not null;size:100" json:"name"`
	Geometry geometry.Polygon `gorm:"not null" json:"geometry"`
	Area     float64          `gorm:"not null" json:"area"`
}

// TableName specifies the table name for Field
func (Field) TableName() string {
	return "fields"
}

// CropType classifies crops
type CropType string

const (
	CropTypeGrain      CropType = "Grain"
	CropTypeFruit      CropType = "Fruit"
	CropTypeVegetable  CropType = "Vegetable"
	CropTypeLegume     CropType = "Legume"
	CropTypeHerb       CropType = "Herb"
	CropTypeRoot       CropType = "Root"
	CropTypeTuber      CropType = "Tuber"
	CropTypeOilseed    CropType = "Oilseed"
	CropTypeSpice      CropType = "Spice"
	CropTypeBeverage   CropType = "Beverage"
	CropTypeIndustrial CropType = "Industrial"
	CropTypeOther      CropType = "Other"
)

// CropTypes lists every accepted CropType
var CropTypes = []CropType{
	CropTypeGrain, CropTypeFruit, CropTypeVegetable, CropTypeLegume,
	CropTypeHerb, CropTypeRoot, CropTypeTuber, CropTypeOilseed,
	CropTypeSpice, CropTypeBeverage, CropTypeIndustrial, CropTypeOther,
}

// Valid reports whether t is one of CropTypes
func (t CropType) Valid() bool {
	for _, ct := range CropTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Crop is a plant species or variety
type Crop struct {
	Base

	Name string   `gorm:"not null;size:100" json:"name"`
	Type CropType `gorm:"not null;size:20" json:"type"`
}

// TableName specifies the table name for Crop
func (Crop) TableName() string {
	return "crops"
}

// CropCycle is one planting-to-harvest run of a crop on a field or a whole
// property. Exactly one of FieldID and PropertyID is set.
type CropCycle struct {
	Base

	Name         string     `gorm:"not null;size:100" json:"name"`
	CropID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"cropId"`
	FieldID      *uuid.UUID `gorm:"type:uuid;index" json:"fieldId"`
	PropertyID   *uuid.UUID `gorm:"type:uuid;index" json:"propertyId"`
	PlantingDate time.Time  `gorm:"not null" json:"plantingDate"`
	HarvestDate  time.Time  `gorm:"not null" json:"harvestDate"`

	// Relationships
	Crop     *CropRef     `gorm:"foreignKey:CropID" json:"crop,omitempty"`
	Field    *FieldRef    `gorm:"foreignKey:FieldID" json:"field,omitempty"`
	Property *PropertyRef `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// TableName specifies the table name for CropCycle
func (CropCycle) TableName() string {
	return "crop_cycles"
}

// ValidateTarget checks that exactly one of FieldID and PropertyID is set
func (c *CropCycle) ValidateTarget() error {
	if (c.FieldID == nil) == (c.PropertyID == nil) {
		return ErrCropCycleTarget
	}
	return nil
}

// BeforeSave rejects crop cycles that violate the field/property exclusivity
func (c *CropCycle) BeforeSave(tx *gorm.DB) error {
	return c.ValidateTarget()
}
