package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "genrent-backend/internal/api/http"
	"genrent-backend/internal/config"
	"genrent-backend/internal/jobs"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
	"genrent-backend/internal/repository/jsonfile"
	"genrent-backend/internal/repository/postgres"
	"genrent-backend/internal/scheduler"
	"genrent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting generator rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Storage configuration", "type", cfg.Storage.Type)

	ctx := context.Background()

	// Initialize storage
	var rentalRepo repository.RentalRepository
	var generatorRepo repository.GeneratorRepository
	switch cfg.Storage.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		store := postgres.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Error("Failed to ensure schema", "error", err)
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		rentalRepo = store.RentalRepository
		generatorRepo = store.GeneratorRepository
		logger.Info("Database connection established")
	default:
		logger.Info("Using JSON file storage", "data_dir", cfg.Storage.DataDir)
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Error("Failed to initialize file storage", "error", err)
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		rentalRepo = store.RentalRepository
		generatorRepo = store.GeneratorRepository
	}

	// Seed the generator pool on first run
	if err := generatorRepo.InitializeDefault(ctx); err != nil {
		logger.Error("Failed to seed generator pool", "error", err)
		log.Fatalf("Failed to seed generator pool: %v", err)
	}

	// Initialize email service
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		logger.Info("Using SendGrid email provider")
		emailSvc = service.NewSendGridService(cfg.SendGrid.APIKey, cfg.Email.From, cfg.Email.FromName)
	} else {
		logger.Info("Using SMTP email provider", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.Email.From)
	}

	// Initialize the lifecycle engine
	rentalSvc := service.NewRentalService(
		rentalRepo,
		generatorRepo,
		emailSvc,
		cfg.Email.AdminEmail,
		cfg.Pricing.DailyRateCents,
	)

	// Start the reminder scheduler
	jobRunner := jobs.NewJobRunner(rentalRepo, generatorRepo, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(rentalSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
