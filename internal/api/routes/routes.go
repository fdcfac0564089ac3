package routes

import (
	"net/http"

	"rtk-backend/internal/api/handlers"
	"rtk-backend/internal/api/middleware"
	"rtk-backend/internal/auth"
	"rtk-backend/internal/config"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/repository"
	"rtk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	validator := validator.New()

	// Initialize repositories
	revisionRepo := repository.NewRevisionRepository(db)
	hardwareRepo := repository.NewHardwareRepository(db)
	growthTestRepo := repository.NewGrowthTestRepository(db)
	growthRecordRepo := repository.NewGrowthRecordRepository(db)
	datasetRepo := repository.NewSurvivalDatasetRepository(db)
	survivalRecordRepo := repository.NewSurvivalRecordRepository(db)

	// Initialize services
	revisionService := service.NewRevisionService(revisionRepo, validator, cfg.DefaultMissionTime)
	hardwareService := service.NewHardwareService(hardwareRepo, revisionRepo, validator, cfg.HRMultiplier)
	predictionService := service.NewPredictionService(validator, cfg.HRMultiplier, cfg.DefaultMissionTime)
	growthService := service.NewGrowthService(growthTestRepo, growthRecordRepo, revisionRepo, validator, cfg.DefaultConfidence)
	survivalService := service.NewSurvivalService(datasetRepo, survivalRecordRepo, revisionRepo, validator, cfg.DefaultConfidence)
	exportService := service.NewExportService(service.ExportRepositories{
		Revisions:       revisionRepo,
		Hardware:        hardwareRepo,
		GrowthTests:     growthTestRepo,
		GrowthRecords:   growthRecordRepo,
		Datasets:        datasetRepo,
		SurvivalRecords: survivalRecordRepo,
	}, cfg.ExportDir)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	revisionHandler := handlers.NewRevisionHandler(revisionService)
	hardwareHandler := handlers.NewHardwareHandler(hardwareService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	growthHandler := handlers.NewGrowthHandler(growthService)
	survivalHandler := handlers.NewSurvivalHandler(survivalService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/api/v1")

	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
		if err != nil {
			// only reachable with an empty JWT_SECRET
			logger.New().WithError(err).Warn("Authentication disabled: failed to initialize auth service")
		} else {
			authHandler := auth.NewAuthHandler(authService)
			router.POST("/api/auth/validate", authHandler.ValidateToken)
			v1.Use(auth.NewAuthMiddleware(authService).RequireAuth())
		}
	}

	{
		revisions := v1.Group("/revisions")
		{
			revisions.GET("", revisionHandler.ListRevisions)
			revisions.POST("", revisionHandler.CreateRevision)
			revisions.GET("/:id", revisionHandler.GetRevision)
			revisions.PUT("/:id", revisionHandler.UpdateRevision)
			revisions.DELETE("/:id", revisionHandler.DeleteRevision)
			revisions.GET("/:id/hardware", hardwareHandler.ListHardware)
			revisions.POST("/:id/hardware", hardwareHandler.CreateHardware)
			revisions.POST("/:id/calculate", hardwareHandler.CalculateRevision)
			revisions.POST("/:id/export", exportHandler.ExportRevision)
		}

		hardware := v1.Group("/hardware")
		{
			hardware.GET("/:id", hardwareHandler.GetHardware)
			hardware.PUT("/:id", hardwareHandler.UpdateHardware)
			hardware.DELETE("/:id", hardwareHandler.DeleteHardware)
			hardware.POST("/:id/calculate", hardwareHandler.CalculateHardware)
		}

		growthTests := v1.Group("/growth-tests")
		{
			growthTests.GET("", growthHandler.ListGrowthTests) // Requires revision_id parameter
			growthTests.POST("", growthHandler.CreateGrowthTest)
			growthTests.GET("/:id", growthHandler.GetGrowthTest)
			growthTests.PUT("/:id", growthHandler.UpdateGrowthTest)
			growthTests.DELETE("/:id", growthHandler.DeleteGrowthTest)
			growthTests.GET("/:id/records", growthHandler.GetGrowthRecords)
			growthTests.POST("/:id/records", growthHandler.AddGrowthRecords)
			growthTests.DELETE("/:id/records", growthHandler.DeleteGrowthRecords)
			growthTests.POST("/:id/fit", growthHandler.FitGrowthTest)
		}

		datasets := v1.Group("/survival-datasets")
		{
			datasets.GET("", survivalHandler.ListDatasets) // Requires revision_id parameter
			datasets.POST("", survivalHandler.CreateDataset)
			datasets.GET("/:id", survivalHandler.GetDataset)
			datasets.PUT("/:id", survivalHandler.UpdateDataset)
			datasets.DELETE("/:id", survivalHandler.DeleteDataset)
			datasets.GET("/:id/records", survivalHandler.GetSurvivalRecords)
			datasets.POST("/:id/records", survivalHandler.AddSurvivalRecords)
			datasets.DELETE("/:id/records", survivalHandler.DeleteSurvivalRecords)
			datasets.POST("/:id/fit", survivalHandler.FitDataset) // Optional distribution parameter
		}

		// Stateless calculations
		v1.POST("/predict", predictionHandler.Predict)
		v1.GET("/predict/catalog", predictionHandler.Catalog)
		v1.POST("/growth/fit", growthHandler.FitGrowthData)
		v1.POST("/survival/fit", survivalHandler.FitSurvivalData)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
