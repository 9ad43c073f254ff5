package database

import (
	"fmt"
	"log"
	"time"

	migrate "github.com/rubenv/sql-migrate"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/followupdev/meeting-followup/pkg/config"
)

// migrationsDir holds the sql-migrate files for the meetings and
// action_items tables, relative to the process working directory.
const migrationsDir = "migrations"

// NewPostgresDB opens the GORM connection backing the meeting and action
// item write-through. Timestamps are normalized to UTC so day-window
// queries line up with the in-memory store.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Environment == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Persistence is best-effort alongside the in-memory store, so the
	// pool stays small and recycles connections aggressively
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	return db, nil
}

// MigrateUp applies any pending migrations from migrationsDir and returns
// how many ran. Both the API boot path and cmd/migrate go through here.
func MigrateUp(db *gorm.DB) (int, error) {
	log.Printf("🔄 Applying migrations from %s/ using sql-migrate...", migrationsDir)

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate up: %w", err)
	}

	source := &migrate.FileMigrationSource{Dir: migrationsDir}
	n, err := migrate.Exec(sqlDB, "postgres", source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration: %w", err)
	}

	log.Printf("✅ Applied %d migration(s)!\n", n)
	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
