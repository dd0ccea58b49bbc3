package routes

import (
	"fmt"

	"studio-admin-backend/internal/api/handlers"
	"studio-admin-backend/internal/api/middleware"
	"studio-admin-backend/internal/auth"
	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/estimate"
	"studio-admin-backend/internal/repository"
	"studio-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const tokenIssuer = "studio-admin"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.TracingServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	deliverableRepo := repository.NewDeliverableRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	aggregator := estimate.NewAggregator(estimate.NewRateTable(cfg.HoursPerPoint, cfg.HourlyRate))
	deliverableService := service.NewDeliverableService(deliverableRepo, validator)
	sprintService := service.NewSprintService(sprintRepo, deliverableRepo, projectRepo, aggregator, validator)
	packageService := service.NewPackageService(packageRepo, deliverableRepo, aggregator, validator)
	projectService := service.NewProjectService(projectRepo, validator)
	ingestionService := service.NewIngestionService(sprintService, deliverableRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, tokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sqlDB, Version)
	deliverableHandler := handlers.NewDeliverableHandler(deliverableService)
	sprintHandler := handlers.NewSprintHandler(sprintService)
	packageHandler := handlers.NewPackageHandler(packageService)
	projectHandler := handlers.NewProjectHandler(projectService)
	ingestionHandler := handlers.NewIngestionHandler(ingestionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	admin := authMiddleware.RequireAdmin()

	{
		// Deliverable catalog: reads for everyone, writes for admins
		deliverables := v1.Group("/deliverables")
		{
			deliverables.GET("", deliverableHandler.ListDeliverables)
			deliverables.GET("/categories", deliverableHandler.ListCategories)
			deliverables.GET("/:id", deliverableHandler.GetDeliverable)
			deliverables.POST("", admin, deliverableHandler.CreateDeliverable)
			deliverables.PATCH("/:id", admin, deliverableHandler.UpdateDeliverable)
			deliverables.DELETE("/:id", admin, deliverableHandler.DeleteDeliverable)
		}

		// Sprint draft routes
		sprints := v1.Group("/sprints")
		{
			sprints.GET("", sprintHandler.ListSprints)
			sprints.POST("", sprintHandler.CreateSprint)
			sprints.GET("/:id", sprintHandler.GetSprint)
			sprints.PATCH("/:id", sprintHandler.UpdateSprint)
			sprints.DELETE("/:id", sprintHandler.DeleteSprint)
			sprints.PUT("/:id/line-items", sprintHandler.SetLineItems)
			sprints.GET("/:id/totals", sprintHandler.GetTotals)
			sprints.POST("/:id/recalculate", sprintHandler.RecalculateTotals)
			sprints.PATCH("/:id/status", sprintHandler.UpdateStatus)
			sprints.PUT("/:id/contract", admin, sprintHandler.UpdateContract)
		}

		// Package template routes
		packages := v1.Group("/packages")
		{
			packages.GET("", packageHandler.ListPackages)
			packages.GET("/by-slug/:slug", packageHandler.GetPackageBySlug)
			packages.GET("/:id", packageHandler.GetPackage)
			packages.GET("/:id/totals", packageHandler.GetPackageTotals)
			packages.POST("", admin, packageHandler.CreatePackage)
			packages.PUT("/by-slug/:slug", admin, packageHandler.UpsertPackage)
			packages.PATCH("/:id", admin, packageHandler.UpdatePackage)
			packages.PUT("/:id/line-items", admin, packageHandler.SetPackageLineItems)
			packages.DELETE("/:id", admin, packageHandler.DeletePackage)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
		}

		// Drafted proposal ingestion
		v1.POST("/ingest", ingestionHandler.IngestProposal)
	}

	return router, nil
}
