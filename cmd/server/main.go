package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studio-admin-backend/internal/api/routes"
	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/database"
	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "studio-admin-backend/docs" // This is needed for swag
)

const shutdownTimeout = 15 * time.Second

//	@title			Studio Admin API
//	@version		1.0
//	@description	Backend API for composing sprint drafts and package templates from the deliverable catalog and estimating their hours and price.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up tracing
	shutdownTracing := tracing.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.TracingEnabled {
		shutdownTracing, err = tracing.Setup(ctx, tracing.Options{
			ServiceName:  cfg.TracingServiceName,
			Environment:  cfg.Environment,
			OTLPEndpoint: cfg.TracingOTLPEndpoint,
			SampleRatio:  cfg.TracingSampleRatio,
		})
		if err != nil {
			logrus.Fatal("Failed to initialize tracing:", err)
		}
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutting down server")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Error("Server stopped:", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server shutdown failed:", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logrus.Error("Tracer shutdown failed:", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
