package jobs

import (
	"context"
	"fmt"
	"time"

	"genrent-backend/internal/domain"
	"genrent-backend/internal/logger"
)

// SendUpcomingRentalReminders emails every customer whose confirmed
// rental starts tomorrow.
func (jr *JobRunner) SendUpcomingRentalReminders() {
	jr.runWithRecovery("SendUpcomingRentalReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		rentals, err := jr.rentalRepo.List(ctx, "")
		if err != nil {
			logger.Error("Failed to list rentals for reminders", "error", err)
			return
		}

		count := 0
		for _, rental := range rentals {
			if !rental.Status.Occupying() || rental.StartDate != tomorrow {
				continue
			}
			if err := jr.emailSvc.SendUpcomingRentalReminder(ctx, rental.Email, rental.Name, rental.StartDate); err != nil {
				logger.Warn("Failed to send rental reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			count++
			logger.Debug("Sent rental reminder", "rental_id", rental.ID, "start_date", rental.StartDate)
		}
		logger.Info("Sent upcoming rental reminders", "count", count)
	})
}

// SendPendingRequestDigest mails the admin a summary of rental requests
// still waiting for a decision.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		pending, err := jr.rentalRepo.List(ctx, domain.RentalStatusPending)
		if err != nil {
			logger.Error("Failed to list pending rentals for digest", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending rental requests, skipping digest")
			return
		}

		oldest := pending[len(pending)-1]
		subject := fmt.Sprintf("%d rental request(s) awaiting review", len(pending))
		message := fmt.Sprintf("There are %d pending rental request(s). The oldest was submitted on %s for the period %s to %s.",
			len(pending), oldest.CreatedAt.Format("2006-01-02"), oldest.StartDate, oldest.EndDate)
		if err := jr.emailSvc.SendAdminNotification(ctx, jr.config.Email.AdminEmail, subject, message); err != nil {
			logger.Warn("Failed to send pending request digest", "error", err)
			return
		}
		logger.Info("Sent pending request digest", "pending", len(pending))
	})
}
