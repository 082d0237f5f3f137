package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/dto"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// CropCycleController handles crop cycle HTTP requests
type CropCycleController struct {
	cropCycleService service.CropCycleService
	logger           *slog.Logger
}

// NewCropCycleController creates a new crop cycle controller
func NewCropCycleController(cropCycleService service.CropCycleService, logger *slog.Logger) *CropCycleController {
	return &CropCycleController{
		cropCycleService: cropCycleService,
		logger:           logger,
	}
}

// Register mounts the crop cycle routes on rg
func (c *CropCycleController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/crop-cycles
func (c *CropCycleController) GetAll(ctx *gin.Context) {
	list, err := c.cropCycleService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/crop-cycles/:id
func (c *CropCycleController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	cycle, err := c.cropCycleService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, cycle)
}

// Create handles POST /api/v1/crop-cycles
// Body: exactly one of fieldId and propertyId; plantingDate and harvestDate
// in ISO 8601 format (RFC3339 or YYYY-MM-DD).
func (c *CropCycleController) Create(ctx *gin.Context) {
	var req dto.CreateCropCycleRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	cycle, err := c.cropCycleService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("crop cycle created",
		"id", cycle.ID,
		"crop_id", cycle.CropID,
		"field_id", cycle.FieldID,
		"property_id", cycle.PropertyID,
	)
	ctx.JSON(http.StatusCreated, gin.H{"cropCycle": cycle})
}

// Update handles PUT /api/v1/crop-cycles/:id
func (c *CropCycleController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCropCycleRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	cycle, err := c.cropCycleService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"cropCycle": cycle})
}

// Delete handles DELETE /api/v1/crop-cycles/:id
func (c *CropCycleController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.cropCycleService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
