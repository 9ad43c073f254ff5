package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Storage      StorageConfig
	Summary      SummaryConfig
	Calendar     CalendarConfig
	Integrations IntegrationsConfig
	Sync         SyncConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration. The service runs fully
// in-memory when the database is disabled; persistence is write-through
// and best-effort.
type DatabaseConfig struct {
	Enabled     bool   `envconfig:"DB_ENABLED" default:"false"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_followup"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds object storage configuration for the summary archive
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-summaries"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// SummaryConfig holds summary source configuration
type SummaryConfig struct {
	// Mode is "mock" (built-in sample summaries) or "http" (fetch the link)
	Mode         string `envconfig:"SUMMARY_SOURCE" default:"mock"`
	FetchTimeout int    `envconfig:"SUMMARY_FETCH_TIMEOUT" default:"10"`
	CacheTTL     int    `envconfig:"SUMMARY_CACHE_TTL" default:"3600"`
}

// CalendarConfig holds calendar source configuration
type CalendarConfig struct {
	// Mode selects the event source; only "mock" is implemented
	Mode string `envconfig:"CALENDAR_SOURCE" default:"mock"`
}

// IntegrationsConfig holds execution integration configuration
type IntegrationsConfig struct {
	UseMock bool `envconfig:"INTEGRATIONS_USE_MOCK" default:"true"`
}

// SyncConfig holds sync orchestrator configuration
type SyncConfig struct {
	DefaultDays int `envconfig:"SYNC_DEFAULT_DAYS" default:"1"`
	MaxDays     int `envconfig:"SYNC_MAX_DAYS" default:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Summary.Mode {
	case "mock", "http":
	default:
		return fmt.Errorf("SUMMARY_SOURCE must be \"mock\" or \"http\", got %q", c.Summary.Mode)
	}
	if c.Calendar.Mode != "mock" {
		return fmt.Errorf("CALENDAR_SOURCE must be \"mock\", got %q", c.Calendar.Mode)
	}
	if c.Sync.DefaultDays < 1 || c.Sync.DefaultDays > c.Sync.MaxDays {
		return fmt.Errorf("SYNC_DEFAULT_DAYS must be between 1 and %d", c.Sync.MaxDays)
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
