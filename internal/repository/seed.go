package repository

import (
	"fmt"
	"math/rand"
	"time"

	"agro-registry/internal/geometry"
	"agro-registry/internal/model"

	"gorm.io/gorm"
)

// SeedSummary reports how many rows SeedDatabase inserted
type SeedSummary struct {
	Organizations int
	Properties    int
	Regions       int
	Fields        int
	Crops         int
	CropCycles    int
}

// SeedRepository handles database seeding operations
type SeedRepository struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeedRepository creates a new seed repository
func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SeedDatabase replaces all data with a demo hierarchy: organizations,
// their properties, a root region per property with two sub-regions, two
// fields per sub-region, a crop catalogue, and crop cycles on every field plus
// one property-wide cycle per property.
func (s *SeedRepository) SeedDatabase() (SeedSummary, error) {
	var summary SeedSummary

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearExistingData(tx); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}

		orgs, err := createOrganizations(tx)
		if err != nil {
			return fmt.Errorf("failed to create organizations: %w", err)
		}
		summary.Organizations = len(orgs)

		properties, err := createProperties(tx, orgs)
		if err != nil {
			return fmt.Errorf("failed to create properties: %w", err)
		}
		summary.Properties = len(properties)

		regions, err := createRegions(tx, properties)
		if err != nil {
			return fmt.Errorf("failed to create regions: %w", err)
		}
		// one root per property plus its leaves
		summary.Regions = len(properties) + len(regions)

		fields, err := createFields(tx, regions)
		if err != nil {
			return fmt.Errorf("failed to create fields: %w", err)
		}
		summary.Fields = len(fields)

		crops, err := createCrops(tx)
		if err != nil {
			return fmt.Errorf("failed to create crops: %w", err)
		}
		summary.Crops = len(crops)

		cycles, err := s.createCropCycles(tx, crops, properties, fields)
		if err != nil {
			return fmt.Errorf("failed to create crop cycles: %w", err)
		}
		summary.CropCycles = cycles
		return nil
	})

	return summary, err
}

// clearExistingData removes existing rows, children first
func clearExistingData(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []any{
		&model.CropCycle{},
		&model.Crop{},
		&model.Field{},
	} {
		if err := all.Delete(m).Error; err != nil {
			return err
		}
	}
	// sub-regions before their parents
	if err := all.Where("parent_region_id IS NOT NULL").Delete(&model.Region{}).Error; err != nil {
		return err
	}
	for _, m := range []any{
		&model.Region{},
		&model.Property{},
		&model.Organization{},
	} {
		if err := all.Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func createOrganizations(tx *gorm.DB) ([]model.Organization, error) {
	orgs := []model.Organization{
		{Name: "Green Valley Cooperative", Country: "US"},
		{Name: "Pampa Agro", Country: "AR"},
	}
	if err := tx.Create(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func createProperties(tx *gorm.DB, orgs []model.Organization) ([]model.Property, error) {
	var properties []model.Property
	for _, org := range orgs {
		for i := 1; i <= 2; i++ {
			properties = append(properties, model.Property{
				OrganizationID: org.ID,
				Name:           fmt.Sprintf("%s Estate %d", org.Name, i),
			})
		}
	}
	if err := tx.Create(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// createRegions returns only the leaf regions, which receive the fields
func createRegions(tx *gorm.DB, properties []model.Property) ([]model.Region, error) {
	var leaves []model.Region
	for i, property := range properties {
		originX, originY := -75.0+float64(i), 45.0

		root := model.Region{
			PropertyID: property.ID,
			Name:       "Main",
			Geometry:   square(originX, originY, 0.02),
			Area:       400,
		}
		if err := tx.Create(&root).Error; err != nil {
			return nil, err
		}

		for j := 0; j < 2; j++ {
			leaves = append(leaves, model.Region{
				PropertyID:     property.ID,
				ParentRegionID: &root.ID,
				Name:           fmt.Sprintf("Block %c", 'A'+j),
				Geometry:       square(originX+0.01*float64(j), originY, 0.01),
				Area:           100,
			})
		}
	}
	if err := tx.Create(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func createFields(tx *gorm.DB, regions []model.Region) ([]model.Field, error) {
	var fields []model.Field
	for _, region := range regions {
		origin := region.Geometry[0][0]
		for k := 0; k < 2; k++ {
			fields = append(fields, model.Field{
				RegionID: region.ID,
				Name:     fmt.Sprintf("%s-%d", region.Name, k+1),
				Geometry: square(origin[0]+0.005*float64(k), origin[1], 0.005),
				Area:     region.Area / 2,
			})
		}
	}
	if err := tx.Create(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func createCrops(tx *gorm.DB) ([]model.Crop, error) {
	crops := []model.Crop{
		{Name: "Corn", Type: model.CropTypeGrain},
		{Name: "Soybean", Type: model.CropTypeOilseed},
		{Name: "Potato", Type: model.CropTypeTuber},
		{Name: "Apple", Type: model.CropTypeFruit},
	}
	if err := tx.Create(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (s *SeedRepository) createCropCycles(tx *gorm.DB, crops []model.Crop, properties []model.Property, fields []model.Field) (int, error) {
	season := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	var cycles []model.CropCycle

	for _, field := range fields {
		crop := crops[s.rng.Intn(len(crops))]
		planting := season.AddDate(0, 0, s.rng.Intn(30))
		cycles = append(cycles, model.CropCycle{
			Name:         fmt.Sprintf("%s %s %d", field.Name, crop.Name, planting.Year()),
			CropID:       crop.ID,
			FieldID:      &field.ID,
			PlantingDate: planting,
			HarvestDate:  planting.AddDate(0, 4+s.rng.Intn(3), 0),
		})
	}

	for _, property := range properties {
		crop := crops[s.rng.Intn(len(crops))]
		cycles = append(cycles, model.CropCycle{
			Name:         fmt.Sprintf("%s %s", property.Name, crop.Name),
			CropID:       crop.ID,
			PropertyID:   &property.ID,
			PlantingDate: season,
			HarvestDate:  season.AddDate(0, 6, 0),
		})
	}

	if err := tx.Create(&cycles).Error; err != nil {
		return 0, err
	}
	return len(cycles), nil
}

// square returns a closed axis-aligned polygon with its lower-left corner at x, y
func square(x, y, size float64) geometry.Polygon {
	return geometry.Polygon{{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}
}
