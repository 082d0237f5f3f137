package repository

import (
	"agro-registry/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cascadeFunc removes or detaches the rows that reference a record about to
// be deleted. It runs inside the delete transaction, so every driver ends up
// with the same rows whether or not it enforces foreign keys.
type cascadeFunc func(tx *gorm.DB, id uuid.UUID) error

// cascadeOrganization removes the organization's properties and everything
// below them
func cascadeOrganization(tx *gorm.DB, id uuid.UUID) error {
	var propertyIDs []uuid.UUID
	if err := tx.Model(&model.Property{}).Where("organization_id = ?", id).Pluck("id", &propertyIDs).Error; err != nil {
		return err
	}
	for _, propertyID := range propertyIDs {
		if err := cascadeProperty(tx, propertyID); err != nil {
			return err
		}
	}
	return tx.Where("organization_id = ?", id).Delete(&model.Property{}).Error
}

// cascadeProperty removes the property's regions, their fields and every
// crop cycle planted on them
func cascadeProperty(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("property_id = ?", id).Delete(&model.CropCycle{}).Error; err != nil {
		return err
	}

	var regionIDs []uuid.UUID
	if err := tx.Model(&model.Region{}).Where("property_id = ?", id).Pluck("id", &regionIDs).Error; err != nil {
		return err
	}
	if len(regionIDs) == 0 {
		return nil
	}
	if err := deleteFieldsOf(tx, regionIDs); err != nil {
		return err
	}
	if err := tx.Model(&model.Region{}).
		Where("parent_region_id IN ? AND property_id <> ?", regionIDs, id).
		Update("parent_region_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("property_id = ?", id).Delete(&model.Region{}).Error
}

// cascadeRegion removes the region's fields and detaches its sub-regions,
// which become roots
func cascadeRegion(tx *gorm.DB, id uuid.UUID) error {
	if err := deleteFieldsOf(tx, []uuid.UUID{id}); err != nil {
		return err
	}
	return tx.Model(&model.Region{}).Where("parent_region_id = ?", id).Update("parent_region_id", nil).Error
}

// cascadeField removes the crop cycles planted on the field
func cascadeField(tx *gorm.DB, id uuid.UUID) error {
	return tx.Where("field_id = ?", id).Delete(&model.CropCycle{}).Error
}

// cascadeCrop removes the crop cycles of the crop
func cascadeCrop(tx *gorm.DB, id uuid.UUID) error {
	return tx.Where("crop_id = ?", id).Delete(&model.CropCycle{}).Error
}

func deleteFieldsOf(tx *gorm.DB, regionIDs []uuid.UUID) error {
	var fieldIDs []uuid.UUID
	if err := tx.Model(&model.Field{}).Where("region_id IN ?", regionIDs).Pluck("id", &fieldIDs).Error; err != nil {
		return err
	}
	if len(fieldIDs) == 0 {
		return nil
	}
	if err := tx.Where("field_id IN ?", fieldIDs).Delete(&model.CropCycle{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", fieldIDs).Delete(&model.Field{}).Error
}
