package jobs

import (
	"genrent-backend/internal/config"
	"genrent-backend/internal/logger"
	"genrent-backend/internal/repository"
	"genrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo    repository.RentalRepository
	generatorRepo repository.GeneratorRepository
	emailSvc      service.EmailService
	config        *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	rentalRepo repository.RentalRepository,
	generatorRepo repository.GeneratorRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentalRepo:    rentalRepo,
		generatorRepo: generatorRepo,
		emailSvc:      emailSvc,
		config:        cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendUpcomingRentalReminders()
	jr.SendPendingRequestDigest()
}
