package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
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

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

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

func (s *emailService) SendRentalConfirmation(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental #%d is confirmed and runs until %s.\n\nBest regards,\nThe Wheelhouse Team",
		name, rentalID, endDate.Format("2006-01-02"))
	return s.send(email, name, fmt.Sprintf("Rental #%d confirmed", rentalID), body)
}

func (s *emailService) SendInstallmentReminder(ctx context.Context, email, name string, amount decimal.Decimal, dueDate time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nA payment of %s is due on %s.\n\nBest regards,\nThe Wheelhouse Team",
		name, amount.StringFixed(2), dueDate.Format("2006-01-02"))
	return s.send(email, name, "Upcoming payment reminder", body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nRental #%d is due back on %s. Please plan the return accordingly.\n\nBest regards,\nThe Wheelhouse Team",
		name, rentalID, endDate.Format("2006-01-02"))
	return s.send(email, name, fmt.Sprintf("Rental #%d return reminder", rentalID), body)
}
