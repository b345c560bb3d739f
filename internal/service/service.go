package service

import (
	"context"
	"io"

	"genrent-backend/internal/domain"
)

// CreateRentalInput is the public booking intake payload. Price is
// computed server-side from the configured daily rate; the client never
// supplies it.
type CreateRentalInput struct {
	Name         string
	Email        string
	Phone        string
	StartDate    string
	EndDate      string
	DeliveryType domain.DeliveryType
	Address      string
}

type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error)
	ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)

	// Lifecycle transitions. Each validates the current status and keeps
	// the generator pool's availability flags consistent.
	Approve(ctx context.Context, id int64) (*domain.Rental, error)
	Invoice(ctx context.Context, id int64) (*domain.Rental, error)
	MarkPaid(ctx context.Context, id int64) (*domain.Rental, error)
	Delete(ctx context.Context, id int64) error

	Availability(ctx context.Context) (*domain.AvailabilityReport, error)
	BookedPeriods(ctx context.Context) ([]domain.BookedPeriod, int, error)
	IsDateBookable(ctx context.Context, date string) (bool, error)

	ToggleGeneratorInService(ctx context.Context, generatorID int32) (*domain.Generator, error)

	ExportCSV(ctx context.Context, startDate, endDate string, w io.Writer) error
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error
	SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error
	SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error
	SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error
	SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error
}
