package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/dto"
	"agro-registry/internal/repository"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyController handles property HTTP requests
type PropertyController struct {
	propertyService service.PropertyService
	logger          *slog.Logger
}

// NewPropertyController creates a new property controller
func NewPropertyController(propertyService service.PropertyService, logger *slog.Logger) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
		logger:          logger,
	}
}

// Register mounts the property routes on rg
func (c *PropertyController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/properties
// Query parameters:
//   - organizationId (optional): only properties of this organization, without joins
func (c *PropertyController) GetAll(ctx *gin.Context) {
	if raw := ctx.Query("organizationId"); raw != "" {
		orgID, ok := parseUUIDParam(ctx, "organizationId", raw)
		if !ok {
			return
		}
		list, err := c.propertyService.Query(ctx.Request.Context(), repository.PropertyQuery{OrganizationID: &orgID})
		if err != nil {
			_ = ctx.Error(err)
			return
		}
		ctx.JSON(http.StatusOK, list)
		return
	}

	list, err := c.propertyService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/properties/:id
func (c *PropertyController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	p, err := c.propertyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Create handles POST /api/v1/properties
func (c *PropertyController) Create(ctx *gin.Context) {
	var req dto.CreatePropertyRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	p, err := c.propertyService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("property created", "id", p.ID, "organization_id", p.OrganizationID)
	ctx.JSON(http.StatusCreated, gin.H{"property": p})
}

// Update handles PUT /api/v1/properties/:id
func (c *PropertyController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdatePropertyRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	p, err := c.propertyService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"property": p})
}

// Delete handles DELETE /api/v1/properties/:id
func (c *PropertyController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.propertyService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
