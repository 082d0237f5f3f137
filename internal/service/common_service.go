package service

import (
	"context"
	"log/slog"

	"agro-registry/internal/model"
	"agro-registry/internal/repository"

	"github.com/google/uuid"
)

// CommonService answers queries that span more than one entity
type CommonService interface {
	GetPropertiesByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]model.Property, error)
}

// commonService implements CommonService
type commonService struct {
	properties PropertyService
	logger     *slog.Logger
}

// NewCommonService creates a new common service
func NewCommonService(properties PropertyService, logger *slog.Logger) CommonService {
	return &commonService{properties: properties, logger: logger}
}

// GetPropertiesByOrganizationID returns the properties owned by the
// organization. An unknown organization yields an empty list.
func (s *commonService) GetPropertiesByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]model.Property, error) {
	list, err := s.properties.Query(ctx, repository.PropertyQuery{OrganizationID: &organizationID})
	if err != nil {
		return nil, fail(s.logger, "failed to list organization properties", err, "organization_id", organizationID)
	}
	return list, nil
}
