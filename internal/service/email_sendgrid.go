package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridService returns an EmailService backed by the SendGrid API.
func NewSendGridService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridService) SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error {
	subject := "New rental request"
	body := fmt.Sprintf("A new rental request was submitted.\n\nCustomer: %s\nPeriod: %s to %s\n\nReview it in the admin panel.", customerName, startDate, endDate)
	return s.send(adminEmail, "Admin", subject, body)
}

func (s *sendGridService) SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error {
	subject := "Your rental has been approved"
	body := fmt.Sprintf("Hello %s,\n\nYour rental from %s to %s has been approved. %s is reserved for you.\n\nBest regards,\nThe Rental Team", customerName, startDate, endDate, generatorName)
	return s.send(email, customerName, subject, body)
}

func (s *sendGridService) SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error {
	subject := "Payment received"
	body := fmt.Sprintf("Hello %s,\n\nWe have received your payment of %s EUR. Thank you for renting with us.\n\nBest regards,\nThe Rental Team", customerName, formatCents(amountCents))
	return s.send(email, customerName, subject, body)
}

func (s *sendGridService) SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error {
	subject := "Your rental starts soon"
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental starts on %s.\n\nBest regards,\nThe Rental Team", customerName, startDate)
	return s.send(email, customerName, subject, body)
}

func (s *sendGridService) SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error {
	return s.send(adminEmail, "Admin", subject, message)
}
