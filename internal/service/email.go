package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendMaintenanceScheduledNotification(_ context.Context, to string, event domain.MaintenanceEvent) error {
	subject := fmt.Sprintf("Maintenance scheduled for vehicle %s", event.Plate)
	body := fmt.Sprintf(
		"Vehicle %s (%s) has been scheduled for maintenance.\n\nReason: %s\nScheduled at: %s\nExpected back: %s\n",
		event.Plate,
		event.Category,
		event.Reason,
		event.StartedAt.Format("2006-01-02 15:04"),
		event.ExpectedEnd.Format("2006-01-02"),
	)
	return s.send(to, "Fleet Manager", subject, body)
}

func (s *emailService) SendCancellationConfirmation(_ context.Context, to, name, reservationCode string, feeCents int64) error {
	subject := "Your reservation has been cancelled"
	body := fmt.Sprintf(
		"Hello %s,\n\nReservation %s has been cancelled.\nCancellation fee: %s\n\nWe hope to see you again.\n",
		name, reservationCode, formatCents(feeCents),
	)
	return s.send(to, name, subject, body)
}

func (s *emailService) SendMaintenanceDueReport(_ context.Context, to, report string) error {
	return s.send(to, "Fleet Manager", "Maintenance overdue report", report)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
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

	logger.Debug("email sent", "to", to, "subject", subject)
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("R$ %d.%02d", cents/100, cents%100)
}
