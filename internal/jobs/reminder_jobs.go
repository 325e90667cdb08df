package jobs

import (
	"context"
	"fmt"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/logger"
)

// SendInstallmentReminders notifies renters about unpaid installments
// due today, in one day and in three days. The sweep only creates
// notifications; it never mutates rentals or installments.
func (jr *JobRunner) SendInstallmentReminders() {
	jr.runWithRecovery("SendInstallmentReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Truncate(24 * time.Hour)

		total := 0
		for _, offset := range []int{0, 1, 3} {
			day := today.AddDate(0, 0, offset)
			installments, err := jr.store.InstallmentRepository.ListUnpaidDueBetween(ctx, day, day)
			if err != nil {
				logger.Error("Failed to list due installments", "due_date", day.Format("2006-01-02"), "error", err)
				continue
			}

			for _, inst := range installments {
				jr.remindInstallment(ctx, inst, offset)
				total++
			}
		}

		logger.Info("Installment reminders sent", "count", total)
	})
}

func (jr *JobRunner) remindInstallment(ctx context.Context, inst domain.Installment, daysUntilDue int) {
	var when string
	switch daysUntilDue {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	default:
		when = fmt.Sprintf("in %d days", daysUntilDue)
	}

	note := &domain.Notification{
		UserID: inst.UserID,
		Title:  "Payment due " + when,
		Message: fmt.Sprintf("Installment %d of rental #%d (%s) is due %s.",
			inst.Seq, inst.RentalID, inst.Amount.StringFixed(2), when),
	}
	if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
		logger.Error("Failed to create installment reminder", "installment_id", inst.ID, "error", err)
		return
	}

	user, err := jr.store.UserRepository.GetByID(ctx, inst.UserID)
	if err != nil {
		logger.Error("Failed to load user for reminder email", "user_id", inst.UserID, "error", err)
		return
	}
	if err := jr.emailSvc.SendInstallmentReminder(ctx, user.Email, user.Name, inst.Amount, inst.DueDate); err != nil {
		logger.Error("Failed to send reminder email", "user_id", user.ID, "error", err)
	}
}

// SendReturnReminders notifies renters whose active rental ends
// tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)

		rentals, err := jr.store.RentalRepository.ListEndingOn(ctx, tomorrow, domain.RentalStatusActive)
		if err != nil {
			logger.Error("Failed to list rentals ending tomorrow", "error", err)
			return
		}

		for _, rental := range rentals {
			note := &domain.Notification{
				UserID: rental.UserID,
				Title:  "Vehicle return due tomorrow",
				Message: fmt.Sprintf("Rental #%d ends on %s. Please return the vehicle on time.",
					rental.ID, rental.EndDate.Format("2006-01-02")),
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create return reminder", "rental_id", rental.ID, "error", err)
				continue
			}

			user, err := jr.store.UserRepository.GetByID(ctx, rental.UserID)
			if err != nil {
				logger.Error("Failed to load user for return reminder", "user_id", rental.UserID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendReturnReminder(ctx, user.Email, user.Name, rental.ID, rental.EndDate); err != nil {
				logger.Error("Failed to send return reminder email", "user_id", user.ID, "error", err)
			}
		}

		logger.Info("Return reminders sent", "count", len(rentals))
	})
}
