package router

import (
	"log/slog"

	"agro-registry/internal/config"
	"agro-registry/internal/controller"
	"agro-registry/internal/middleware"
	"agro-registry/internal/repository"
	"agro-registry/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Controller ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("database pool stats unavailable", "error", err.Error())
		sqlDB = nil
	}
	metrics := middleware.NewMetrics(sqlDB)

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(metrics.Middleware())
	r.Use(middleware.ErrorHandler(logger))

	// ── Repositories ─────────────────────────────────────────────────────────
	organizationRepo := repository.NewOrganizationRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	cropRepo := repository.NewCropRepository(db)
	cropCycleRepo := repository.NewCropCycleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	propertySvc := service.NewPropertyService(propertyRepo, organizationRepo, logger)
	commonSvc := service.NewCommonService(propertySvc, logger)
	organizationSvc := service.NewOrganizationService(organizationRepo, commonSvc, logger)
	regionSvc := service.NewRegionService(regionRepo, propertyRepo, logger)
	fieldSvc := service.NewFieldService(fieldRepo, regionRepo, logger)
	cropSvc := service.NewCropService(cropRepo, logger)
	cropCycleSvc := service.NewCropCycleService(cropCycleRepo, service.CropCycleDeps{
		Crops:      cropRepo,
		Fields:     fieldRepo,
		Properties: propertyRepo,
	}, logger)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", controller.Health(db))
	r.GET("/metrics", metrics.MetricsHandler())

	v1 := r.Group("/api/v1")
	{
		controller.NewOrganizationController(organizationSvc, logger).Register(v1.Group("/organizations"))
		controller.NewPropertyController(propertySvc, logger).Register(v1.Group("/properties"))
		controller.NewRegionController(regionSvc, logger).Register(v1.Group("/regions"))
		controller.NewFieldController(fieldSvc, logger).Register(v1.Group("/fields"))
		controller.NewCropController(cropSvc, logger).Register(v1.Group("/crops"))
		controller.NewCropCycleController(cropCycleSvc, logger).Register(v1.Group("/crop-cycles"))
	}

	return r
}
