package model

import "github.com/google/uuid"

// The *Ref types are id+name projections of related records, used when a
// listing joins one level of relationships.

// OrganizationRef projects an organization to its id and name
type OrganizationRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

func (OrganizationRef) TableName() string { return "organizations" }

// PropertyRef projects a property to its id and name
type PropertyRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

func (PropertyRef) TableName() string { return "properties" }

// RegionRef projects a region to its id and name
type RegionRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

func (RegionRef) TableName() string { return "regions" }

// SubRegionRef is a RegionRef that also carries the parent key, which GORM
// needs to group children under their parent.
type SubRegionRef struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `json:"name"`
	ParentRegionID *uuid.UUID `gorm:"type:uuid" json:"-"`
}

func (SubRegionRef) TableName() string { return "regions" }

// FieldRef projects a field to its id and name
type FieldRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

func (FieldRef) TableName() string { return "fields" }

// CropRef projects a crop to its id and name
type CropRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

func (CropRef) TableName() string { return "crops" }
