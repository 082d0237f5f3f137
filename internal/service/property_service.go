package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"agro-registry/internal/apperror"
	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyService defines the interface for property operations
type PropertyService interface {
	GetAll(ctx context.Context) ([]model.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	Query(ctx context.Context, q repository.PropertyQuery) ([]model.Property, error)
	Create(ctx context.Context, req dto.CreatePropertyRequest) (*model.Property, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePropertyRequest) (*model.Property, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// propertyService implements PropertyService
type propertyService struct {
	repo          repository.PropertyRepository
	organizations repository.OrganizationRepository
	logger        *slog.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepository, organizations repository.OrganizationRepository, logger *slog.Logger) PropertyService {
	return &propertyService{repo: repo, organizations: organizations, logger: logger}
}

// GetAll returns every property with its organization
func (s *propertyService) GetAll(ctx context.Context) ([]model.Property, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list properties", err)
	}
	return list, nil
}

// GetByID returns the property with its organization
func (s *propertyService) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get property", translate(err, "Property"), "id", id)
	}
	return p, nil
}

// Query returns properties matching q, without joins
func (s *propertyService) Query(ctx context.Context, q repository.PropertyQuery) ([]model.Property, error) {
	list, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, fail(s.logger, "failed to query properties", err)
	}
	return list, nil
}

// Create checks that the organization exists and inserts a property
func (s *propertyService) Create(ctx context.Context, req dto.CreatePropertyRequest) (*model.Property, error) {
	if err := requireExists(ctx, s.logger, s.organizations, "Organization", req.OrganizationID); err != nil {
		return nil, err
	}

	p := &model.Property{OrganizationID: req.OrganizationID, Name: req.Name}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fail(s.logger, "failed to create property", err)
	}
	return p, nil
}

// Update applies the fields present in req. Moving to another organization
// refreshes the organization ref.
func (s *propertyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePropertyRequest) (*model.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load property for update", translate(err, "Property"), "id", id)
	}

	if req.OrganizationID != nil && *req.OrganizationID != p.OrganizationID {
		org, err := s.organizations.FindByID(ctx, *req.OrganizationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(s.logger, "referenced record missing",
				apperror.BadRequest(fmt.Sprintf("Organization with ID %s does not exist", *req.OrganizationID)),
				"entity", "Organization", "id", *req.OrganizationID)
		}
		if err != nil {
			return nil, fail(s.logger, "failed to load organization", err, "id", *req.OrganizationID)
		}
		p.OrganizationID = org.ID
		p.Organization = &model.OrganizationRef{ID: org.ID, Name: org.Name}
	}
	if req.Name != nil {
		p.Name = *req.Name
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fail(s.logger, "failed to update property", err, "id", id)
	}
	return p, nil
}

// Delete removes the property with its regions, fields and crop cycles
func (s *propertyService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete property", err, "id", id)
	}
	return n > 0, nil
}
