package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/followupdev/meeting-followup/pkg/validator"

	"github.com/followupdev/meeting-followup/internal/adapter/handler"
	"github.com/followupdev/meeting-followup/internal/adapter/repository"
	"github.com/followupdev/meeting-followup/internal/domain/repositories"
	"github.com/followupdev/meeting-followup/internal/infrastructure/cache"
	"github.com/followupdev/meeting-followup/internal/infrastructure/database"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/calendar"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/integrations"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/summary"
	"github.com/followupdev/meeting-followup/internal/infrastructure/storage"
	"github.com/followupdev/meeting-followup/internal/usecase/dispatch"
	"github.com/followupdev/meeting-followup/internal/usecase/extract"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
	"github.com/followupdev/meeting-followup/internal/usecase/syncer"
	"github.com/followupdev/meeting-followup/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Database is optional; without it the service runs fully in-memory
	var meetingRepo repositories.MeetingRepository
	var itemRepo repositories.ActionItemRepository
	if cfg.Database.Enabled {
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		// Apply migrations on boot only when explicitly enabled in config.
		// Production deployments should run cmd/migrate in CI/CD instead.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run cmd/migrate instead.")
			}
			log.Println("🔄 Applying migrations on boot (development only) ...")
			if _, err := database.MigrateUp(db); err != nil {
				log.Fatalf("Failed to apply migrations: %v", err)
			}
		} else {
			log.Println("🔄 Skipping boot migrations; run cmd/migrate for schema changes in CI/CD/production")
		}

		log.Println("⚙️  Initializing repositories...")
		meetingRepo = repository.NewMeetingRepository(db)
		itemRepo = repository.NewActionItemRepository(db)
	} else {
		log.Println("📦 Database disabled; meetings and action items live in memory only")
	}

	// Initialize summary source
	log.Printf("📄 Initializing summary source (%s mode)...", cfg.Summary.Mode)
	summarySource := summary.NewSource(&cfg.Summary)

	// Redis caches fetched summaries; optional
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		ttl := time.Duration(cfg.Summary.CacheTTL) * time.Second
		summarySource = summary.WithCache(summarySource, redisClient, ttl)
		log.Println("✅ Summary cache enabled")
	}

	// Initialize calendar source
	log.Printf("📅 Initializing calendar source (%s mode)...", cfg.Calendar.Mode)
	calendarSource := calendar.NewSource(&cfg.Calendar)

	// Initialize lifecycle store
	log.Println("🗂️  Initializing lifecycle store...")
	engine := extract.NewEngine()
	store := lifecycle.NewStore(engine, meetingRepo, itemRepo, logger)

	// Object storage archives processed summaries; optional
	if cfg.Storage.Enabled {
		log.Println("🪣 Initializing summary archive...")
		archive, err := storage.NewSummaryArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize summary archive: %v", err)
		}
		store = store.WithArchive(archive)
		log.Println("✅ Summary archive enabled")
	}

	// Load persisted state before serving
	if cfg.Database.Enabled {
		log.Println("🔄 Loading persisted meetings and action items...")
		if err := store.Load(context.Background()); err != nil {
			log.Fatalf("Failed to load persisted state: %v", err)
		}
	}

	// Initialize sync orchestrator
	log.Println("🔁 Initializing sync orchestrator...")
	orchestrator := syncer.NewOrchestrator(store, calendarSource, summarySource, &cfg.Sync, logger)

	// Initialize execution integrations
	log.Println("🔌 Initializing execution integrations...")
	clients := integrations.NewClients(cfg.Integrations.UseMock)
	if cfg.Integrations.UseMock {
		log.Println("⚠️  Integrations running in MOCK mode (no real providers needed)")
	}
	dispatcher := dispatch.NewService(store, clients, logger)

	// Initialize handlers
	log.Println("🚪 Initializing handlers...")
	meetingHandler := handler.NewMeeting(store, orchestrator, summarySource, logger)
	actionItemHandler := handler.NewActionItem(store, dispatcher, logger)
	briefHandler := handler.NewBrief(store, cache.NewMemoryStore(), logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, actionItemHandler, briefHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
