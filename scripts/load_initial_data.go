package main

import (
	"fmt"
	"os"
	"time"

	"studio-admin-backend/internal/config"
	"studio-admin-backend/internal/database"
	"studio-admin-backend/internal/estimate"
	applogger "studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/repository"
	"studio-admin-backend/internal/seed"
	"studio-admin-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dataDir = "scripts/data"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applogger.Setup(cfg.LogLevel, os.Stdout)
	log := applogger.New()

	log.Info("Loading initial data from YAML files...")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	deliverableRepo := repository.NewDeliverableRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	validate := validator.New()
	aggregator := estimate.NewAggregator(estimate.NewRateTable(cfg.HoursPerPoint, cfg.HourlyRate))

	loader := seed.NewLoader(
		service.NewDeliverableService(deliverableRepo, validate),
		service.NewPackageService(packageRepo, deliverableRepo, aggregator, validate),
		"seed",
	)

	result, err := loader.LoadDir(dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.WithFields(map[string]interface{}{
		"deliverables_created": result.DeliverablesCreated,
		"deliverables_total":   result.DeliverablesTotal,
		"packages_created":     result.PackagesCreated,
		"packages_total":       result.PackagesTotal,
	}).Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			applogger.New().Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
