package service

import (
	"context"
	"log/slog"

	"agro-registry/internal/dto"
	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
)

// OrganizationService defines the interface for organization operations
type OrganizationService interface {
	GetAll(ctx context.Context) ([]model.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Create(ctx context.Context, req dto.CreateOrganizationRequest) (*model.Organization, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) (*model.Organization, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetPropertiesByOrganizationID(ctx context.Context, id uuid.UUID) ([]model.Property, error)
}

// organizationService implements OrganizationService
type organizationService struct {
	repo   repository.OrganizationRepository
	common CommonService
	logger *slog.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepository, common CommonService, logger *slog.Logger) OrganizationService {
	return &organizationService{repo: repo, common: common, logger: logger}
}

// GetAll returns every organization
func (s *organizationService) GetAll(ctx context.Context) ([]model.Organization, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fail(s.logger, "failed to list organizations", err)
	}
	return list, nil
}

// GetByID returns the organization with the given ID
func (s *organizationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to get organization", translate(err, "Organization"), "id", id)
	}
	return org, nil
}

// Create inserts an organization
func (s *organizationService) Create(ctx context.Context, req dto.CreateOrganizationRequest) (*model.Organization, error) {
	org := &model.Organization{Name: req.Name, Country: req.Country}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, fail(s.logger, "failed to create organization", err)
	}
	return org, nil
}

// Update applies the fields present in req
func (s *organizationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) (*model.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.logger, "failed to load organization for update", translate(err, "Organization"), "id", id)
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Country != nil {
		org.Country = *req.Country
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fail(s.logger, "failed to update organization", err, "id", id)
	}
	return org, nil
}

// Delete removes the organization and everything it owns
func (s *organizationService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.logger, "failed to delete organization", err, "id", id)
	}
	return n > 0, nil
}

// GetPropertiesByOrganizationID delegates to the common service
func (s *organizationService) GetPropertiesByOrganizationID(ctx context.Context, id uuid.UUID) ([]model.Property, error) {
	return s.common.GetPropertiesByOrganizationID(ctx, id)
}
