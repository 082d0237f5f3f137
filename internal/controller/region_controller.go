package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/dto"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// RegionController handles region HTTP requests
type RegionController struct {
	regionService service.RegionService
	logger        *slog.Logger
}

// NewRegionController creates a new region controller
func NewRegionController(regionService service.RegionService, logger *slog.Logger) *RegionController {
	return &RegionController{
		regionService: regionService,
		logger:        logger,
	}
}

// Register mounts the region routes on rg
func (c *RegionController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/regions
func (c *RegionController) GetAll(ctx *gin.Context) {
	list, err := c.regionService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/regions/:id
func (c *RegionController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	r, err := c.regionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, r)
}

// Create handles POST /api/v1/regions
func (c *RegionController) Create(ctx *gin.Context) {
	var req dto.CreateRegionRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	r, err := c.regionService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("region created", "id", r.ID, "property_id", r.PropertyID, "parent_region_id", r.ParentRegionID)
	ctx.JSON(http.StatusCreated, gin.H{"region": r})
}

// Update handles PUT /api/v1/regions/:id
// A null parentRegionId turns the region into a root.
func (c *RegionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateRegionRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	r, err := c.regionService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"region": r})
}

// Delete handles DELETE /api/v1/regions/:id
func (c *RegionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.regionService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
