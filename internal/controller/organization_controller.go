package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/apperror"
	"agro-registry/internal/dto"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationController handles organization HTTP requests
type OrganizationController struct {
	organizationService service.OrganizationService
	logger              *slog.Logger
}

// NewOrganizationController creates a new organization controller
func NewOrganizationController(organizationService service.OrganizationService, logger *slog.Logger) *OrganizationController {
	return &OrganizationController{
		organizationService: organizationService,
		logger:              logger,
	}
}

// Register mounts the organization routes on rg
func (c *OrganizationController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.GET("/:id/properties", c.GetProperties)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/organizations
func (c *OrganizationController) GetAll(ctx *gin.Context) {
	list, err := c.organizationService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/organizations/:id
func (c *OrganizationController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	org, err := c.organizationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, org)
}

// GetProperties handles GET /api/v1/organizations/:id/properties
func (c *OrganizationController) GetProperties(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	properties, err := c.organizationService.GetPropertiesByOrganizationID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"properties": properties})
}

// Create handles POST /api/v1/organizations
func (c *OrganizationController) Create(ctx *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !bindJSON(ctx, &req) {
		return
	}
	// only a payload missing both name and country is rejected here
	if req.Name == "" && req.Country == "" {
		c.logger.Warn("organization payload missing name and country")
		_ = ctx.Error(apperror.BadRequest(http.StatusText(http.StatusBadRequest)))
		return
	}
	if !validateRequest(ctx, &req) {
		return
	}

	org, err := c.organizationService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("organization created", "id", org.ID)
	ctx.JSON(http.StatusCreated, gin.H{"organization": org})
}

// Update handles PUT /api/v1/organizations/:id
func (c *OrganizationController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateOrganizationRequest
	if !bindAndValidate(ctx, &req) {
		return
	}

	org, err := c.organizationService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"organization": org})
}

// Delete handles DELETE /api/v1/organizations/:id
func (c *OrganizationController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.organizationService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
