package migration

import (
	"fmt"

	"github.com/cmac111/scraper/internal/database"
	"github.com/sirupsen/logrus"
)

// indexMigrations run after the GORM auto-migration on every boot, so each
// statement must be safe to re-run.
var indexMigrations = []string{
	`CREATE INDEX IF NOT EXISTS idx_business_leads_created_at ON business_leads (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_business_leads_has_website ON business_leads (has_website)`,
	`CREATE INDEX IF NOT EXISTS idx_business_leads_rating ON business_leads (rating)`,
	`CREATE INDEX IF NOT EXISTS idx_status_checks_timestamp ON status_checks (timestamp)`,
}

type Runner struct {
	dbManager *database.Manager
	logger    *logrus.Logger
}

func NewRunner(dbManager *database.Manager, logger *logrus.Logger) *Runner {
	return &Runner{
		dbManager: dbManager,
		logger:    logger,
	}
}

// RunMigrations executes all pending migrations
func (r *Runner) RunMigrations() error {
	r.logger.Info("Starting database migrations...")

	// First run GORM auto-migrations
	if err := r.dbManager.Migrate(); err != nil {
		return fmt.Errorf("GORM auto-migration failed: %w", err)
	}

	// Then create the secondary indexes
	if err := r.runIndexMigrations(); err != nil {
		return fmt.Errorf("index migrations failed: %w", err)
	}

	r.logger.Info("Database migrations completed successfully")
	return nil
}

func (r *Runner) runIndexMigrations() error {
	for i, stmt := range indexMigrations {
		r.logger.WithFields(logrus.Fields{
			"statement": i + 1,
			"total":     len(indexMigrations),
		}).Debug("Executing index migration")

		if err := r.dbManager.DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
		}
	}
	return nil
}
