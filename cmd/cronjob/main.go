package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"genrent-backend/internal/config"
	"genrent-backend/internal/jobs"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
	"genrent-backend/internal/repository/jsonfile"
	"genrent-backend/internal/repository/postgres"
	"genrent-backend/internal/scheduler"
	"genrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-rental-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize storage
	var rentalRepo repository.RentalRepository
	var generatorRepo repository.GeneratorRepository
	if cfg.Storage.Type == "postgres" {
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
		if err := store.EnsureSchema(context.Background()); err != nil {
			logger.Error("Failed to ensure schema", "error", err)
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		rentalRepo = store.RentalRepository
		generatorRepo = store.GeneratorRepository
	} else {
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Error("Failed to initialize file storage", "error", err)
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		rentalRepo = store.RentalRepository
		generatorRepo = store.GeneratorRepository
	}

	// Initialize email service
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridService(cfg.SendGrid.APIKey, cfg.Email.From, cfg.Email.FromName)
	} else {
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.Email.From)
	}

	// Initialize job runner
	jobRunner := jobs.NewJobRunner(rentalRepo, generatorRepo, emailSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-rental-reminders":
		jobRunner.SendUpcomingRentalReminders()
	case "send-pending-digest":
		jobRunner.SendPendingRequestDigest()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-rental-reminders\n")
		fmt.Printf("  - send-pending-digest\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
