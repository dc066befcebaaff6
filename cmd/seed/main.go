package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cmac111/scraper/internal/config"
	"github.com/cmac111/scraper/internal/database"
	"github.com/cmac111/scraper/internal/migration"
	"github.com/cmac111/scraper/internal/mockdata"
	"github.com/cmac111/scraper/internal/models"
	"github.com/cmac111/scraper/internal/repository"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// SeedSearchConfig represents one canned search to run against the mock generator
type SeedSearchConfig struct {
	Query    string
	Location string
	Radius   int // Search radius in meters
}

// LeadSeeder runs seed searches and stores the generated leads
type LeadSeeder struct {
	generator   *mockdata.Generator
	repoManager *repository.RepositoryManager
	logger      *logrus.Logger
	processed   map[string]bool
	errors      []error
}

var (
	// Seed searches covering every category the mock catalog knows about
	SeedSearches = []SeedSearchConfig{
		{Query: "plumbers", Location: "Toronto, ON", Radius: 20000},
		{Query: "emergency plumbing", Location: "Ottawa, ON", Radius: 15000},
		{Query: "dentists", Location: "Vancouver, BC", Radius: 20000},
		{Query: "family dental clinic", Location: "Calgary, AB", Radius: 10000},
		{Query: "lawyers", Location: "Toronto, ON", Radius: 25000},
		{Query: "hair salons", Location: "Montreal, QC", Radius: 15000},
		{Query: "auto repair", Location: "Chicago, IL", Radius: 20000},
		{Query: "coffee shops", Location: "New York, NY", Radius: 10000},
		{Query: "pizza restaurants", Location: "London, UK", Radius: 15000},
		{Query: "sushi", Location: "Los Angeles, CA", Radius: 20000},
	}

	// Command line flags
	dryRun      = flag.Bool("dry-run", false, "Don't write to the database, just print what would be inserted")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	searchLimit = flag.Int("limit", 0, "Limit number of seed searches to run (0 = all)")
	clearLeads  = flag.Bool("clear", false, "Delete existing leads before seeding")
	randSeed    = flag.Int64("seed", 0, "Random seed for reproducible lead generation (0 = clock)")
)

func main() {
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.Info("Starting lead seeder...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	var repoManager *repository.RepositoryManager

	if !*dryRun {
		if err := cfg.Validate(); err != nil {
			logger.WithError(err).Fatal("Configuration validation failed")
		}

		// Initialize database for inserts
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

		if err := migration.NewRunner(dbManager, logger).RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Database migration failed")
		}

		repoManager = repository.NewRepositoryManager(dbManager.DB)

		if *clearLeads {
			deleted, err := repoManager.BusinessLead.DeleteAll()
			if err != nil {
				logger.WithError(err).Fatal("Failed to clear existing leads")
			}
			logger.WithField("deleted", deleted).Info("Cleared existing leads")
		}
	}

	// Create the lead generator
	var generator *mockdata.Generator
	if *randSeed != 0 {
		generator = mockdata.NewGeneratorWithSeed(*randSeed, logger)
	} else {
		generator = mockdata.NewGenerator(logger)
	}

	seeder := NewLeadSeeder(generator, repoManager, logger)

	ctx := context.Background()
	if err := seeder.SeedLeads(ctx); err != nil {
		logger.WithError(err).Fatal("Lead seeding failed")
	}

	logger.Info("Lead seeding completed successfully!")
}

func NewLeadSeeder(generator *mockdata.Generator, repoManager *repository.RepositoryManager, logger *logrus.Logger) *LeadSeeder {
	return &LeadSeeder{
		generator:   generator,
		repoManager: repoManager,
		logger:      logger,
		processed:   make(map[string]bool),
		errors:      make([]error, 0),
	}
}

func (ls *LeadSeeder) SeedLeads(ctx context.Context) error {
	ls.logger.Info("Starting lead seeding process...")

	searches := make([]SeedSearchConfig, len(SeedSearches))
	copy(searches, SeedSearches)

	// Apply search limit if specified
	if *searchLimit > 0 && *searchLimit < len(searches) {
		searches = searches[:*searchLimit]
		ls.logger.WithField("limit", *searchLimit).Info("Limited searches to run")
	}

	ls.logger.WithField("total_searches", len(searches)).Info("Running seed searches")

	inserted := 0
	for i, search := range searches {
		key := fmt.Sprintf("%s @ %s", search.Query, search.Location)
		if ls.processed[key] {
			continue
		}

		ls.logger.WithFields(logrus.Fields{
			"query":    search.Query,
			"location": search.Location,
			"progress": fmt.Sprintf("%d/%d", i+1, len(searches)),
		}).Info("Running seed search")

		n, err := ls.processSearch(ctx, search)
		if err != nil {
			ls.logger.WithError(err).WithField("search", key).Error("Failed to run seed search")
			ls.errors = append(ls.errors, fmt.Errorf("failed to seed %s: %w", key, err))
			continue
		}

		ls.processed[key] = true
		inserted += n
		ls.logger.WithFields(logrus.Fields{
			"search": key,
			"leads":  n,
		}).Info("Seed search completed")
	}

	// Report results
	ls.logger.WithFields(logrus.Fields{
		"searches": len(ls.processed),
		"leads":    inserted,
		"errors":   len(ls.errors),
	}).Info("Lead seeding completed")

	if len(ls.errors) > 0 {
		ls.logger.Warn("Some searches failed:")
		for _, err := range ls.errors {
			ls.logger.WithError(err).Warn("Seeding error")
		}
	}

	return nil
}

func (ls *LeadSeeder) processSearch(ctx context.Context, search SeedSearchConfig) (int, error) {
	req := models.SearchRequest{
		Query:    search.Query,
		Location: search.Location,
		Radius:   search.Radius,
	}

	center, err := ls.generator.Geocode(ctx, search.Location)
	if err != nil {
		return 0, fmt.Errorf("geocode: %w", err)
	}

	leads, err := ls.generator.FetchLeads(ctx, req, center)
	if err != nil {
		return 0, fmt.Errorf("generate leads: %w", err)
	}

	if *dryRun {
		for _, lead := range leads {
			ls.logger.WithFields(logrus.Fields{
				"name":    lead.Name,
				"address": lead.Address,
			}).Info("Would insert lead")
		}
		return len(leads), nil
	}

	for i := range leads {
		if err := ls.repoManager.BusinessLead.Create(&leads[i]); err != nil {
			return 0, fmt.Errorf("insert lead %q: %w", leads[i].Name, err)
		}
	}

	return len(leads), nil
}
