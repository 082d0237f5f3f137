package service

import (
	"context"
	"log/slog"

	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
)

// FieldService defines the interface for field operations
type FieldService interface {
	GetAll(ctx context.Context) ([]model.Field, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Field, error)
	Create(ctx context.Context, req dto.CreateFieldRequest) (*model.Field, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateFieldRequest) (*model.Field, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// fieldService implements FieldService
type fieldService struct {
	repo    repository.FieldRepository
	regions repository.RegionRepository
	logger  *slog.Logger
}

// NewFieldService creates a new field service
func NewFieldService(repo repository.FieldRepository, regions repository.RegionRepository, logger *slog.Logger) FieldService {
	return &fieldService{repo: repo, regions: regions, logger: logger}
}

// GetAll returns every field
func (s *fieldService) GetAll(ctx context.Context) ([]model.Field, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list fields", err)
	}
	return list, nil
}

// GetByID returns the field with the given ID
func (s *fieldService) GetByID(ctx context.Context, id uuid.UUID) (*model.Field, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get field", translate(err, "Field"), "id", id)
	}
	return f, nil
}

// Create checks that the region exists and inserts a field
func (s *fieldService) Create(ctx context.Context, req dto.CreateFieldRequest) (*model.Field, error) {
	if err := requireExists(ctx, s.logger, s.regions, "Region", req.RegionID); err != nil {
		return nil, err
	}

	f := &model.Field{
		RegionID: req.RegionID,
		Name:     req.Name,
		Geometry: req.Geometry,
		Area:     *req.Area,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fail(s.logger, "failed to create field", err)
	}
	return f, nil
}

// Update applies the fields present in req
func (s *fieldService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFieldRequest) (*model.Field, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load field for update", translate(err, "Field"), "id", id)
	}

	if req.RegionID != nil && *req.RegionID != f.RegionID {
		if err := requireExists(ctx, s.logger, s.regions, "Region", *req.RegionID); err != nil {
			return nil, err
		}
		f.RegionID = *req.RegionID
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Geometry != nil {
		f.Geometry = *req.Geometry
	}
	if req.Area != nil {
		f.Area = *req.Area
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, fail(s.logger, "failed to update field", err, "id", id)
	}
	return f, nil
}

// Delete removes the field and its crop cycles
func (s *fieldService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete field", err, "id", id)
	}
	return n > 0, nil
}
