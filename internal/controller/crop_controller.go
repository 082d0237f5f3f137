package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/dto"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// CropController handles crop HTTP requests
type CropController struct {
	cropService service.CropService
	logger      *slog.Logger
}

// NewCropController creates a new crop controller
func NewCropController(cropService service.CropService, logger *slog.Logger) *CropController {
	return &CropController{
		cropService: cropService,
		logger:      logger,
	}
}

// Register mounts the crop routes on rg
func (c *CropController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/crops
func (c *CropController) GetAll(ctx *gin.Context) {
	list, err := c.cropService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/crops/:id
func (c *CropController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	crop, err := c.cropService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, crop)
}

// Create handles POST /api/v1/crops
func (c *CropController) Create(ctx *gin.Context) {
	var req dto.CreateCropRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	crop, err := c.cropService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("crop created", "id", crop.ID, "type", crop.Type)
	ctx.JSON(http.StatusCreated, gin.H{"crop": crop})
}

// Update handles PUT /api/v1/crops/:id
func (c *CropController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCropRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	crop, err := c.cropService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"crop": crop})
}

// Delete handles DELETE /api/v1/crops/:id
func (c *CropController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.cropService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
