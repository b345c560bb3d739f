package jobs

import (
	"context"
	"testing"
	"time"

	"genrent-backend/internal/config"
	"genrent-backend/internal/domain"
	"genrent-backend/internal/repository/jsonfile"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmail struct {
	mock.Mock
}

func (m *mockEmail) SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error {
	return m.Called(ctx, adminEmail, customerName, startDate, endDate).Error(0)
}

func (m *mockEmail) SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error {
	return m.Called(ctx, email, customerName, generatorName, startDate, endDate).Error(0)
}

func (m *mockEmail) SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error {
	return m.Called(ctx, email, customerName, amountCents).Error(0)
}

func (m *mockEmail) SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error {
	return m.Called(ctx, email, customerName, startDate).Error(0)
}

func (m *mockEmail) SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error {
	return m.Called(ctx, adminEmail, subject, message).Error(0)
}

func newTestRunner(t *testing.T, email *mockEmail) (*JobRunner, *jsonfile.Store) {
	t.Helper()
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.GeneratorRepository.InitializeDefault(context.Background()))

	cfg := &config.Config{Email: config.EmailConfig{AdminEmail: "admin@example.com"}}
	return NewJobRunner(store.RentalRepository, store.GeneratorRepository, email, cfg), store
}

func seedRental(t *testing.T, store *jsonfile.Store, status domain.RentalStatus, startDate string) *domain.Rental {
	t.Helper()
	rental := &domain.Rental{
		Name:         "Matti Meikäläinen",
		Email:        "matti@example.com",
		Phone:        "+358401234567",
		StartDate:    startDate,
		EndDate:      "2026-12-31",
		DeliveryType: domain.DeliveryTypePickup,
		PriceCents:   9900,
		Status:       status,
	}
	require.NoError(t, store.RentalRepository.Create(context.Background(), rental))
	return rental
}

func TestSendUpcomingRentalReminders(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	email := &mockEmail{}
	runner, store := newTestRunner(t, email)

	seedRental(t, store, domain.RentalStatusApproved, tomorrow)
	seedRental(t, store, domain.RentalStatusInvoiced, tomorrow)
	seedRental(t, store, domain.RentalStatusPending, tomorrow)  // not confirmed yet
	seedRental(t, store, domain.RentalStatusApproved, dayAfter) // too early to remind

	email.On("SendUpcomingRentalReminder", mock.Anything, "matti@example.com", "Matti Meikäläinen", tomorrow).
		Return(nil).Twice()

	runner.SendUpcomingRentalReminders()

	email.AssertExpectations(t)
}

func TestSendUpcomingRentalReminders_NoMatches(t *testing.T) {
	email := &mockEmail{}
	runner, store := newTestRunner(t, email)
	seedRental(t, store, domain.RentalStatusApproved, "2026-01-01")

	runner.SendUpcomingRentalReminders()

	email.AssertNotCalled(t, "SendUpcomingRentalReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendPendingRequestDigest(t *testing.T) {
	email := &mockEmail{}
	runner, store := newTestRunner(t, email)

	seedRental(t, store, domain.RentalStatusPending, "2026-07-01")
	seedRental(t, store, domain.RentalStatusPending, "2026-07-10")
	seedRental(t, store, domain.RentalStatusApproved, "2026-07-20")

	email.On("SendAdminNotification", mock.Anything, "admin@example.com",
		"2 rental request(s) awaiting review", mock.AnythingOfType("string")).
		Return(nil).Once()

	runner.SendPendingRequestDigest()

	email.AssertExpectations(t)
}

func TestSendPendingRequestDigest_NothingPending(t *testing.T) {
	email := &mockEmail{}
	runner, store := newTestRunner(t, email)
	seedRental(t, store, domain.RentalStatusPaid, "2026-07-01")

	runner.SendPendingRequestDigest()

	email.AssertNotCalled(t, "SendAdminNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunWithRecovery(t *testing.T) {
	email := &mockEmail{}
	runner, _ := newTestRunner(t, email)

	// A panicking job must not take the scheduler down.
	runner.runWithRecovery("ExplodingJob", func() { panic("boom") })
}
