package controller

import (
	"log/slog"
	"net/http"

	"agro-registry/internal/dto"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
)

// FieldController handles field HTTP requests
type FieldController struct {
	fieldService service.FieldService
	logger       *slog.Logger
}

// NewFieldController creates a new field controller
func NewFieldController(fieldService service.FieldService, logger *slog.Logger) *FieldController {
	return &FieldController{
		fieldService: fieldService,
		logger:       logger,
	}
}

// Register mounts the field routes on rg
func (c *FieldController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.GetAll)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// GetAll handles GET /api/v1/fields
func (c *FieldController) GetAll(ctx *gin.Context) {
	list, err := c.fieldService.GetAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/v1/fields/:id
func (c *FieldController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	f, err := c.fieldService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, f)
}

// Create handles POST /api/v1/fields
func (c *FieldController) Create(ctx *gin.Context) {
	var req dto.CreateFieldRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	f, err := c.fieldService.Create(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	c.logger.Info("field created", "id", f.ID, "region_id", f.RegionID)
	ctx.JSON(http.StatusCreated, gin.H{"field": f})
}

// Update handles PUT /api/v1/fields/:id
func (c *FieldController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateFieldRequest
	if !bindAndValidate(ctx, &req) {
		return
	}
	f, err := c.fieldService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"field": f})
}

// Delete handles DELETE /api/v1/fields/:id
func (c *FieldController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	deleted, err := c.fieldService.Delete(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": deleted})
}
