package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmac111/scraper/internal/api"
	"github.com/cmac111/scraper/internal/api/handlers"
	"github.com/cmac111/scraper/internal/config"
	"github.com/cmac111/scraper/internal/database"
	"github.com/cmac111/scraper/internal/googleplaces"
	"github.com/cmac111/scraper/internal/health"
	"github.com/cmac111/scraper/internal/middleware"
	"github.com/cmac111/scraper/internal/migration"
	"github.com/cmac111/scraper/internal/mockdata"
	"github.com/cmac111/scraper/internal/repository"
	"github.com/cmac111/scraper/internal/services"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger := utils.GetLogger()
	logger.Info("Starting Google Maps scraper API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Configuration validation failed")
	}

	// Initialize database manager
	dbConfig := &database.Config{
		DatabaseURL: cfg.DSN(),
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	dbManager, err := database.NewManager(dbConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	// Run migrations
	migrationRunner := migration.NewRunner(dbManager, logger)
	if err := migrationRunner.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Database migration failed")
	}

	repoManager := repository.NewRepositoryManager(dbManager.DB)

	// Select the lead provider
	var geocoder services.Geocoder
	var leadSource services.LeadSource
	switch cfg.Search.Provider {
	case "google":
		if err := cfg.ValidateGoogle(); err != nil {
			logger.WithError(err).Fatal("Google Maps configuration validation failed")
		}
		placesClient := googleplaces.NewClient(cfg.Google.BaseURL, cfg.Google.APIKey, logger)
		placesService := googleplaces.NewService(placesClient, logger)
		geocoder, leadSource = placesService, placesService
		logger.Info("Using Google Places lead provider")
	default:
		generator := mockdata.NewGenerator(logger)
		geocoder, leadSource = generator, generator
		logger.Info("Using mock lead provider")
	}

	// Initialize services
	cache := database.NewCache(dbManager.Redis, logger)
	searchService := services.NewSearchService(geocoder, leadSource, repoManager.BusinessLead, cache, logger)
	healthChecker := health.NewChecker(dbManager, logger)

	// Wire handlers and router
	h := api.Handlers{
		Search: handlers.NewSearchHandler(searchService, logger),
		Status: handlers.NewStatusHandler(repoManager.StatusCheck, logger),
		Leads:  handlers.NewLeadsHandler(repoManager.BusinessLead, logger),
		Health: handlers.NewHealthHandler(healthChecker, logger),
	}

	rateLimiter := middleware.NewRateLimiter(100)
	router := api.SetupRouter(h, rateLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Server shutdown failed")
		}
	}()

	logger.WithField("port", cfg.Server.Port).Info("API listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("Server error")
	}
}
