package service

import (
	"context"
	"log/slog"

	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
)

// CropService defines the interface for crop operations
type CropService interface {
	GetAll(ctx context.Context) ([]model.Crop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Crop, error)
	Create(ctx context.Context, req dto.CreateCropRequest) (*model.Crop, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCropRequest) (*model.Crop, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// cropService implements CropService
type cropService struct {
	repo   repository.CropRepository
	logger *slog.Logger
}

// NewCropService creates a new crop service
func NewCropService(repo repository.CropRepository, logger *slog.Logger) CropService {
	return &cropService{repo: repo, logger: logger}
}

// GetAll returns every crop
func (s *cropService) GetAll(ctx context.Context) ([]model.Crop, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list crops", err)
	}
	return list, nil
}

// GetByID returns the crop with the given ID
func (s *cropService) GetByID(ctx context.Context, id uuid.UUID) (*model.Crop, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get crop", translate(err, "Crop"), "id", id)
	}
	return c, nil
}

// Create inserts a crop
func (s *cropService) Create(ctx context.Context, req dto.CreateCropRequest) (*model.Crop, error) {
	c := &model.Crop{Name: req.Name, Type: req.Type}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fail(s.logger, "failed to create crop", err)
	}
	return c, nil
}

// Update applies the fields present in req
func (s *cropService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCropRequest) (*model.Crop, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load crop for update", translate(err, "Crop"), "id", id)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fail(s.logger, "failed to update crop", err, "id", id)
	}
	return c, nil
}

// Delete removes the crop and its crop cycles
func (s *cropService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete crop", err, "id", id)
	}
	return n > 0, nil
}
