package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailService records outgoing notifications without sending anything.
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error {
	args := m.Called(ctx, adminEmail, customerName, startDate, endDate)
	return args.Error(0)
}

func (m *MockEmailService) SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error {
	args := m.Called(ctx, email, customerName, generatorName, startDate, endDate)
	return args.Error(0)
}

func (m *MockEmailService) SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error {
	args := m.Called(ctx, email, customerName, amountCents)
	return args.Error(0)
}

func (m *MockEmailService) SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error {
	args := m.Called(ctx, email, customerName, startDate)
	return args.Error(0)
}

func (m *MockEmailService) SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error {
	args := m.Called(ctx, adminEmail, subject, message)
	return args.Error(0)
}

// newQuietEmailMock accepts any notification. Tests that assert on a
// specific send set their own expectations instead.
func newQuietEmailMock() *MockEmailService {
	m := &MockEmailService{}
	m.On("SendRentalRequestNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendRentalApprovedNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendPaymentConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendUpcomingRentalReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendAdminNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}
