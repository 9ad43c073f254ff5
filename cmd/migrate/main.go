package main

import (
	"log"

	"github.com/followupdev/meeting-followup/internal/infrastructure/database"
	"github.com/followupdev/meeting-followup/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations
	if _, err := database.MigrateUp(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
}
