package dto

import (
	"agro-registry/internal/geometry"
	"agro-registry/internal/model"

	"github.com/google/uuid"
)

// ─── Organization ────────────────────────────────────────────────────────────

type CreateOrganizationRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
}

type UpdateOrganizationRequest struct {
	Name    *string `json:"name"    validate:"omitnil,min=1,max=100"`
	Country *string `json:"country" validate:"omitnil,min=1,max=100"`
}

// ─── Property ────────────────────────────────────────────────────────────────

type CreatePropertyRequest struct {
	OrganizationID uuid.UUID `json:"organizationId" validate:"required"`
	Name           string    `json:"name"           validate:"required,max=100"`
}

type UpdatePropertyRequest struct {
	OrganizationID *uuid.UUID `json:"organizationId"`
	Name           *string    `json:"name"           validate:"omitnil,min=1,max=100"`
}

// ─── Region ──────────────────────────────────────────────────────────────────

type CreateRegionRequest struct {
	PropertyID     uuid.UUID        `json:"propertyId"     validate:"required"`
	ParentRegionID *uuid.UUID       `json:"parentRegionId"`
	Name           string           `json:"name"           validate:"required,max=100"`
	Geometry       geometry.Polygon `json:"geometry"       validate:"required,min=1"`
	Area           *float64         `json:"area"           validate:"required,gte=0"`
}

// UpdateRegionRequest uses Nullable for parentRegionId so that a region can
// be promoted to a root with an explicit null.
type UpdateRegionRequest struct {
	PropertyID     *uuid.UUID          `json:"propertyId"`
	ParentRegionID Nullable[uuid.UUID] `json:"parentRegionId"`
	Name           *string             `json:"name"     validate:"omitnil,min=1,max=100"`
	Geometry       *geometry.Polygon   `json:"geometry" validate:"omitnil,min=1"`
	Area           *float64            `json:"area"     validate:"omitnil,gte=0"`
}

// ─── Field ───────────────────────────────────────────────────────────────────

type CreateFieldRequest struct {
	RegionID uuid.UUID        `json:"regionId" validate:"required"`
	Name     string           `json:"name"     validate:"required,max=100"`
	Geometry geometry.Polygon `json:"geometry" validate:"required,min=1"`
	Area     *float64         `json:"area"     validate:"required,gte=0"`
}

type UpdateFieldRequest struct {
	RegionID *uuid.UUID        `json:"regionId"`
	Name     *string           `json:"name"     validate:"omitnil,min=1,max=100"`
	Geometry *geometry.Polygon `json:"geometry" validate:"omitnil,min=1"`
	Area     *float64          `json:"area"     validate:"omitnil,gte=0"`
}

// ─── Crop ────────────────────────────────────────────────────────────────────

type CreateCropRequest struct {
	Name string         `json:"name" validate:"required,max=100"`
	Type model.CropType `json:"type" validate:"required,oneof=Grain Fruit Vegetable Legume Herb Root Tuber Oilseed Spice Beverage Industrial Other"`
}

type UpdateCropRequest struct {
	Name *string         `json:"name" validate:"omitnil,min=1,max=100"`
	Type *model.CropType `json:"type" validate:"omitnil,oneof=Grain Fruit Vegetable Legume Herb Root Tuber Oilseed Spice Beverage Industrial Other"`
}

// ─── Crop cycle ──────────────────────────────────────────────────────────────

// Dates are ISO 8601 strings, parsed by the service.
type CreateCropCycleRequest struct {
	Name         string     `json:"name"         validate:"required,max=100"`
	CropID       uuid.UUID  `json:"cropId"       validate:"required"`
	FieldID      *uuid.UUID `json:"fieldId"`
	PropertyID   *uuid.UUID `json:"propertyId"`
	PlantingDate string     `json:"plantingDate" validate:"required"`
	HarvestDate  string     `json:"harvestDate"  validate:"required"`
}

type UpdateCropCycleRequest struct {
	Name         *string             `json:"name"         validate:"omitnil,min=1,max=100"`
	CropID       *uuid.UUID          `json:"cropId"`
	FieldID      Nullable[uuid.UUID] `json:"fieldId"`
	PropertyID   Nullable[uuid.UUID] `json:"propertyId"`
	PlantingDate *string             `json:"plantingDate" validate:"omitnil,min=1"`
	HarvestDate  *string             `json:"harvestDate"  validate:"omitnil,min=1"`
}
