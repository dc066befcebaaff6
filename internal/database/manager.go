package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cmac111/scraper/internal/models"
	"github.com/cmac111/scraper/pkg/utils"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database connection manager
type Manager struct {
	DB     *gorm.DB
	Redis  *redis.Client
	logger *logrus.Logger
}

// Database configuration
type Config struct {
	DatabaseURL string
	RedisURL    string
	LogLevel    string
}

// NewManager creates a new database manager with connection pooling
func NewManager(config *Config, log *logrus.Logger) (*Manager, error) {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Silent)
	if config.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	// Open database connection with pooling
	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// Compose setups may start the API before postgres accepts connections
	var pingErr error
	for attempt := 1; attempt <= 5; attempt++ {
		if pingErr = sqlDB.Ping(); pingErr == nil {
			break
		}
		log.WithError(pingErr).Warnf("Database not ready (attempt %d/5), retrying", attempt)
		time.Sleep(2 * time.Second)
	}
	if pingErr != nil {
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	// Connect to Redis
	redisOpts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Configure Redis connection pool
	redisOpts.PoolSize = 20
	redisOpts.MinIdleConns = 5
	redisOpts.MaxConnAge = time.Hour
	redisOpts.IdleTimeout = 30 * time.Minute

	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Database and Redis connections established successfully")

	return &Manager{
		DB:     db,
		Redis:  redisClient,
		logger: log,
	}, nil
}

// Migrate runs database migrations
func (m *Manager) Migrate() error {
	m.logger.Info("Running database migrations...")

	return m.DB.AutoMigrate(
		&models.StatusCheck{},
		&models.BusinessLead{},
	)
}

// Close closes all database connections
func (m *Manager) Close() error {
	if m.Redis != nil {
		if err := m.Redis.Close(); err != nil {
			m.logger.WithError(err).Error("Failed to close Redis connection")
		}
	}

	if m.DB != nil {
		sqlDB, err := m.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

// Health check methods
func (m *Manager) PingDatabase() error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *Manager) PingRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Redis.Ping(ctx).Err()
}

// Cache implementation
type Cache struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewCache(client *redis.Client, logger *logrus.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
	}
}

// Cache key constants
const (
	GeocodeKey = "geocode:%s"
)

// GeocodeTTL bounds how long resolved coordinates stay cached
const GeocodeTTL = 24 * time.Hour

func geocodeCacheKey(location string) string {
	normalized := strings.ToLower(strings.TrimSpace(location))
	return fmt.Sprintf(GeocodeKey, utils.MD5Hash(normalized))
}

// CacheGeocode stores resolved coordinates for a location string
func (c *Cache) CacheGeocode(ctx context.Context, location string, coords *models.Coordinates, expiration time.Duration) error {
	data, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates: %w", err)
	}

	return c.client.Set(ctx, geocodeCacheKey(location), data, expiration).Err()
}

// GetCachedGeocode retrieves cached coordinates for a location string.
// Returns redis.Nil when the location has not been cached yet.
func (c *Cache) GetCachedGeocode(ctx context.Context, location string) (*models.Coordinates, error) {
	data, err := c.client.Get(ctx, geocodeCacheKey(location)).Result()
	if err != nil {
		return nil, err
	}

	var coords models.Coordinates
	if err := json.Unmarshal([]byte(data), &coords); err != nil {
		return nil, err
	}

	return &coords, nil
}
