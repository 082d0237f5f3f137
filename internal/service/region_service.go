package service

import (
	"context"
	"errors"
	"log/slog"

	"agro-registry/internal/apperror"
	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionService defines the interface for region operations
type RegionService interface {
	GetAll(ctx context.Context) ([]model.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error)
	Create(ctx context.Context, req dto.CreateRegionRequest) (*model.Region, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRegionRequest) (*model.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// regionService implements RegionService
type regionService struct {
	repo       repository.RegionRepository
	properties repository.PropertyRepository
	logger     *slog.Logger
}

// NewRegionService creates a new region service
func NewRegionService(repo repository.RegionRepository, properties repository.PropertyRepository, logger *slog.Logger) RegionService {
	return &regionService{repo: repo, properties: properties, logger: logger}
}

// GetAll returns every region with its parent and direct sub-regions
func (s *regionService) GetAll(ctx context.Context) ([]model.Region, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list regions", err)
	}
	return list, nil
}

// GetByID returns the region with the given ID
func (s *regionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get region", translate(err, "Region"), "id", id)
	}
	return r, nil
}

// Create validates the property and parent references and inserts a region
func (s *regionService) Create(ctx context.Context, req dto.CreateRegionRequest) (*model.Region, error) {
	if err := requireExists(ctx, s.logger, s.properties, "Property", req.PropertyID); err != nil {
		return nil, err
	}

	r := &model.Region{
		PropertyID:     req.PropertyID,
		ParentRegionID: req.ParentRegionID,
		Name:           req.Name,
		Geometry:       req.Geometry,
		Area:           *req.Area,
	}
	if r.ParentRegionID != nil {
		if err := s.checkParent(ctx, r); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fail(s.logger, "failed to create region", err)
	}
	return r, nil
}

// Update applies the fields present in req. Changing the property is only
// allowed for regions without sub-regions.
func (s *regionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRegionRequest) (*model.Region, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load region for update", translate(err, "Region"), "id", id)
	}

	if req.PropertyID != nil && *req.PropertyID != r.PropertyID {
		if err := requireExists(ctx, s.logger, s.properties, "Property", *req.PropertyID); err != nil {
			return nil, err
		}
		hasChildren, err := s.repo.HasSubRegions(ctx, r.ID)
		if err != nil {
			return nil, fail(s.logger, "failed to check sub-regions", err, "id", id)
		}
		if hasChildren {
			return nil, fail(s.logger, "region with sub-regions cannot change property",
				apperror.BadRequest("A region with sub-regions cannot be moved to another property"), "id", id)
		}
		r.PropertyID = *req.PropertyID
	}
	if req.ParentRegionID.Set {
		r.ParentRegionID = req.ParentRegionID.Ptr()
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Geometry != nil {
		r.Geometry = *req.Geometry
	}
	if req.Area != nil {
		r.Area = *req.Area
	}

	if r.ParentRegionID != nil && (req.ParentRegionID.Set || req.PropertyID != nil) {
		if err := s.checkParent(ctx, r); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, fail(s.logger, "failed to update region", err, "id", id)
	}
	return r, nil
}

// Delete removes the region and its fields; sub-regions become roots
func (s *regionService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete region", err, "id", id)
	}
	return n > 0, nil
}

// checkParent verifies that r's parent exists on the same property and is
// neither r itself nor one of its descendants.
func (s *regionService) checkParent(ctx context.Context, r *model.Region) error {
	parentID := *r.ParentRegionID
	if parentID == r.ID {
		return fail(s.logger, "region cycle rejected", apperror.BadRequest("A region cannot be its own parent"), "id", r.ID)
	}

	parent, err := s.repo.FindByID(ctx, parentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(s.logger, "parent region missing",
			apperror.BadRequest("Region with ID "+parentID.String()+" does not exist"), "parent_region_id", parentID)
	}
	if err != nil {
		return fail(s.logger, "failed to load parent region", err, "parent_region_id", parentID)
	}
	if parent.PropertyID != r.PropertyID {
		return fail(s.logger, "parent region on another property",
			apperror.BadRequest("Parent region belongs to a different property"), "parent_region_id", parentID)
	}

	// a new region has no descendants yet
	if r.ID == uuid.Nil {
		return nil
	}

	seen := map[uuid.UUID]bool{parentID: true}
	current := parent.ParentRegionID
	for current != nil {
		if *current == r.ID {
			return fail(s.logger, "region cycle rejected",
				apperror.BadRequest("Parent region cannot be a descendant of the region"), "id", r.ID, "parent_region_id", parentID)
		}
		if seen[*current] {
			break
		}
		seen[*current] = true

		current, err = s.repo.FindParentID(ctx, *current)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return fail(s.logger, "failed to walk region ancestors", err, "id", r.ID)
		}
	}
	return nil
}
