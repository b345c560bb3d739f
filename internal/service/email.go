package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService returns an SMTP-backed EmailService.
func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalRequestNotification(ctx context.Context, adminEmail, customerName, startDate, endDate string) error {
	subject := "New rental request"
	body := fmt.Sprintf("A new rental request was submitted.\n\nCustomer: %s\nPeriod: %s to %s\n\nReview it in the admin panel.", customerName, startDate, endDate)
	return s.send(adminEmail, subject, body)
}

func (s *emailService) SendRentalApprovedNotification(ctx context.Context, email, customerName, generatorName, startDate, endDate string) error {
	subject := "Your rental has been approved"
	body := fmt.Sprintf("Hello %s,\n\nYour rental from %s to %s has been approved. %s is reserved for you.\n\nBest regards,\nThe Rental Team", customerName, startDate, endDate, generatorName)
	return s.send(email, subject, body)
}

func (s *emailService) SendPaymentConfirmation(ctx context.Context, email, customerName string, amountCents int32) error {
	subject := "Payment received"
	body := fmt.Sprintf("Hello %s,\n\nWe have received your payment of %s EUR. Thank you for renting with us.\n\nBest regards,\nThe Rental Team", customerName, formatCents(amountCents))
	return s.send(email, subject, body)
}

func (s *emailService) SendUpcomingRentalReminder(ctx context.Context, email, customerName, startDate string) error {
	subject := "Your rental starts soon"
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental starts on %s.\n\nBest regards,\nThe Rental Team", customerName, startDate)
	return s.send(email, subject, body)
}

func (s *emailService) SendAdminNotification(ctx context.Context, adminEmail, subject, message string) error {
	return s.send(adminEmail, subject, message)
}
