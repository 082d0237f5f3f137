package service

import (
	"context"
	"log/slog"
	"time"

	"agro-registry/internal/apperror"
	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
)

// CropCycleService defines the interface for crop cycle operations
type CropCycleService interface {
	GetAll(ctx context.Context) ([]model.CropCycle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CropCycle, error)
	Create(ctx context.Context, req dto.CreateCropCycleRequest) (*model.CropCycle, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCropCycleRequest) (*model.CropCycle, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CropCycleDeps groups the repositories a crop cycle references
type CropCycleDeps struct {
	Crops      repository.CropRepository
	Fields     repository.FieldRepository
	Properties repository.PropertyRepository
}

// cropCycleService implements CropCycleService
type cropCycleService struct {
	repo   repository.CropCycleRepository
	deps   CropCycleDeps
	logger *slog.Logger
}

// NewCropCycleService creates a new crop cycle service
func NewCropCycleService(repo repository.CropCycleRepository, deps CropCycleDeps, logger *slog.Logger) CropCycleService {
	return &cropCycleService{repo: repo, deps: deps, logger: logger}
}

// GetAll returns every crop cycle with its crop, property and field
func (s *cropCycleService) GetAll(ctx context.Context) ([]model.CropCycle, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list crop cycles", err)
	}
	return list, nil
}

// GetByID returns the crop cycle with the given ID
func (s *cropCycleService) GetByID(ctx context.Context, id uuid.UUID) (*model.CropCycle, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get crop cycle", translate(err, "CropCycle"), "id", id)
	}
	return c, nil
}

// Create validates dates and references and inserts a crop cycle planted
// on exactly one of a field or a property
func (s *cropCycleService) Create(ctx context.Context, req dto.CreateCropCycleRequest) (*model.CropCycle, error) {
	c := &model.CropCycle{
		Name:       req.Name,
		CropID:     req.CropID,
		FieldID:    req.FieldID,
		PropertyID: req.PropertyID,
	}
	if err := c.ValidateTarget(); err != nil {
		return nil, fail(s.logger, "invalid crop cycle target", translate(err, "CropCycle"))
	}

	var err error
	if c.PlantingDate, err = s.parseDate("plantingDate", req.PlantingDate); err != nil {
		return nil, err
	}
	if c.HarvestDate, err = s.parseDate("harvestDate", req.HarvestDate); err != nil {
		return nil, err
	}
	if err := s.checkDates(c); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, c, true, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fail(s.logger, "failed to create crop cycle", translate(err, "CropCycle"))
	}
	return c, nil
}

// Update applies the fields present in req and re-checks dates and the
// field/property target
func (s *cropCycleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCropCycleRequest) (*model.CropCycle, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load crop cycle for update", translate(err, "CropCycle"), "id", id)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	cropChanged := req.CropID != nil && *req.CropID != c.CropID
	if req.CropID != nil {
		c.CropID = *req.CropID
	}
	if req.FieldID.Set {
		c.FieldID = req.FieldID.Ptr()
	}
	if req.PropertyID.Set {
		c.PropertyID = req.PropertyID.Ptr()
	}
	if req.PlantingDate != nil {
		if c.PlantingDate, err = s.parseDate("plantingDate", *req.PlantingDate); err != nil {
			return nil, err
		}
	}
	if req.HarvestDate != nil {
		if c.HarvestDate, err = s.parseDate("harvestDate", *req.HarvestDate); err != nil {
			return nil, err
		}
	}

	if err := c.ValidateTarget(); err != nil {
		return nil, fail(s.logger, "invalid crop cycle target", translate(err, "CropCycle"), "id", id)
	}
	if err := s.checkDates(c); err != nil {
		return nil, err
	}
	targetChanged := req.FieldID.Set || req.PropertyID.Set
	if err := s.checkReferences(ctx, c, cropChanged, targetChanged); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fail(s.logger, "failed to update crop cycle", translate(err, "CropCycle"), "id", id)
	}
	return c, nil
}

// Delete removes the crop cycle
func (s *cropCycleService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete crop cycle", err, "id", id)
	}
	return n > 0, nil
}

func (s *cropCycleService) parseDate(name, value string) (time.Time, error) {
	t, err := parseISO8601Date(value)
	if err != nil {
		return time.Time{}, fail(s.logger, "invalid "+name,
			apperror.BadRequest(name+" must be in ISO 8601 format (RFC3339 or YYYY-MM-DD)"), name, value)
	}
	return t, nil
}

func (s *cropCycleService) checkDates(c *model.CropCycle) error {
	if c.HarvestDate.Before(c.PlantingDate) {
		return fail(s.logger, "invalid date range",
			apperror.BadRequest("harvestDate must not be before plantingDate"),
			"planting_date", c.PlantingDate.Format(time.RFC3339),
			"harvest_date", c.HarvestDate.Format(time.RFC3339),
		)
	}
	return nil
}

// checkReferences verifies that the referenced crop and target exist
func (s *cropCycleService) checkReferences(ctx context.Context, c *model.CropCycle, crop, target bool) error {
	if crop {
		if err := requireExists(ctx, s.logger, s.deps.Crops, "Crop", c.CropID); err != nil {
			return err
		}
	}
	if !target {
		return nil
	}
	if c.FieldID != nil {
		return requireExists(ctx, s.logger, s.deps.Fields, "Field", *c.FieldID)
	}
	return requireExists(ctx, s.logger, s.deps.Properties, "Property", *c.PropertyID)
}
