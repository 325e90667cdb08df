package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/logger"
	"wheelhouse-backend/internal/repository"
	"wheelhouse-backend/internal/utils"
)

type rentalService struct {
	rentalRepo      repository.RentalRepository
	vehicleRepo     repository.VehicleRepository
	installmentRepo repository.InstallmentRepository
	userRepo        repository.UserRepository
	notifier        *Notifier
	emailSvc        EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	installmentRepo repository.InstallmentRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:      rentalRepo,
		vehicleRepo:     vehicleRepo,
		installmentRepo: installmentRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		emailSvc:        emailSvc,
	}
}

// CreateRental opens a rental. Customer creates start in pending with a
// full installment schedule; staff creates consume an inventory unit and
// start active with no installments.
func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, []domain.Installment, error) {
	if input.StartDate.IsZero() {
		return nil, nil, domain.NewValidationError("start_date", "is required")
	}
	if input.EndDate.IsZero() {
		return nil, nil, domain.NewValidationError("end_date", "is required")
	}

	days, err := utils.TotalDays(input.StartDate, input.EndDate)
	if err != nil {
		return nil, nil, domain.NewValidationError("end_date", err.Error())
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, nil, err
	}

	var total decimal.Decimal
	if input.TotalPrice != nil {
		total = *input.TotalPrice
	} else {
		tiers, err := s.vehicleRepo.ListTiers(ctx, input.VehicleID)
		if err != nil {
			return nil, nil, err
		}
		total, err = utils.ResolvePrice(vehicle, tiers, days)
		if err != nil {
			return nil, nil, err
		}
	}

	rental := &domain.Rental{
		CustomerID:        input.CustomerID,
		VehicleID:         input.VehicleID,
		UserID:            input.UserID,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		TotalPrice:        total,
		InspectionFormKey: input.InspectionFormKey,
	}

	if input.Staff {
		// Walk-in rental: the vehicle leaves the lot immediately, so the
		// unit is consumed up front and no billing schedule is created.
		if err := s.vehicleRepo.TryActivate(ctx, input.VehicleID); err != nil {
			return nil, nil, err
		}
		rental.Status = domain.RentalStatusActive
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			if releaseErr := s.vehicleRepo.ReleaseUnit(ctx, input.VehicleID); releaseErr != nil {
				return nil, nil, fmt.Errorf("create rental: %v (unit release also failed: %w)", err, releaseErr)
			}
			return nil, nil, err
		}
		return rental, nil, nil
	}

	rental.Status = domain.RentalStatusPending
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, nil, err
	}

	schedule, err := utils.BuildSchedule(total, input.StartDate, days)
	if err != nil {
		return nil, nil, err
	}
	for i := range schedule {
		schedule[i].RentalID = rental.ID
		schedule[i].UserID = input.UserID
	}
	if err := s.installmentRepo.CreateSchedule(ctx, rental.ID, schedule); err != nil {
		return nil, nil, err
	}

	s.notifier.Dispatch(input.UserID, "Rental requested",
		fmt.Sprintf("Your rental #%d for %s %s is pending confirmation. Total: %s %s in %d installment(s).",
			rental.ID, vehicle.Model, input.StartDate.Format("2006-01-02"), total.StringFixed(2), vehicle.Currency, len(schedule)))

	return rental, schedule, nil
}

func (s *rentalService) GetRental(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isStaff && rental.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, userID int32, isStaff bool, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	if isStaff {
		return s.rentalRepo.ListAll(ctx, status, page, pageSize)
	}
	return s.rentalRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *rentalService) Confirm(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending {
		return nil, domain.NewInvalidTransition(rental.Status, "confirm",
			fmt.Sprintf("only a pending rental can be confirmed, current status is %s", rental.Status))
	}

	rental.Status = domain.RentalStatusConfirmed
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	s.notifier.Dispatch(rental.UserID, "Rental confirmed",
		fmt.Sprintf("Rental #%d has been confirmed. Pickup on %s.", rental.ID, rental.StartDate.Format("2006-01-02")))
	s.sendConfirmationEmail(rental.UserID, rental.ID, rental.EndDate)
	return rental, nil
}

// sendConfirmationEmail mails the renter off the request path. Lookup or
// delivery failures are logged and never reach the caller.
func (s *rentalService) sendConfirmationEmail(userID, rentalID int32, endDate time.Time) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("confirmation email panicked", "rental_id", rentalID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			logger.Error("failed to load user for confirmation email", "user_id", userID, "rental_id", rentalID, "error", err)
			return
		}
		if err := s.emailSvc.SendRentalConfirmation(ctx, user.Email, user.Name, rentalID, endDate); err != nil {
			logger.Error("failed to send confirmation email", "user_id", userID, "rental_id", rentalID, "error", err)
		}
	}()
}

func (s *rentalService) Start(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusConfirmed {
		return nil, domain.NewInvalidTransition(rental.Status, "start",
			fmt.Sprintf("only a confirmed rental can be started, current status is %s", rental.Status))
	}

	// Unit consumption and the guard run in one conditional update; two
	// concurrent starts against the last unit cannot both succeed.
	if err := s.vehicleRepo.TryActivate(ctx, rental.VehicleID); err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusActive
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		if releaseErr := s.vehicleRepo.ReleaseUnit(ctx, rental.VehicleID); releaseErr != nil {
			return nil, fmt.Errorf("start rental: %v (unit release also failed: %w)", err, releaseErr)
		}
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) Complete(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.NewInvalidTransition(rental.Status, "complete",
			fmt.Sprintf("only an active rental can be completed, current status is %s", rental.Status))
	}

	rental.Status = domain.RentalStatusCompleted
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.ReleaseUnit(ctx, rental.VehicleID); err != nil {
		return nil, fmt.Errorf("rental %d completed but unit release failed: %w", rental.ID, err)
	}

	s.notifier.Dispatch(rental.UserID, "Rental completed",
		fmt.Sprintf("Rental #%d is complete. Thank you.", rental.ID))
	return rental, nil
}

// Cancel aborts a rental. Staff can cancel any non-terminal rental; the
// renter can cancel their own while it is still pending.
func (s *rentalService) Cancel(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isStaff {
		if rental.UserID != userID {
			return nil, domain.ErrNotFound
		}
		if rental.Status != domain.RentalStatusPending {
			return nil, domain.NewInvalidTransition(rental.Status, "cancel",
				fmt.Sprintf("only a pending rental can be cancelled by the renter, current status is %s", rental.Status))
		}
	}
	if rental.Status.IsTerminal() {
		return nil, domain.NewInvalidTransition(rental.Status, "cancel",
			fmt.Sprintf("a %s rental cannot be cancelled", rental.Status))
	}
	wasActive := rental.Status == domain.RentalStatusActive

	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	// A unit was only consumed once the rental went active, so only the
	// active case hands it back.
	if wasActive {
		if err := s.vehicleRepo.ReleaseUnit(ctx, rental.VehicleID); err != nil {
			return nil, fmt.Errorf("rental %d cancelled but unit release failed: %w", rental.ID, err)
		}
	}

	s.notifier.Dispatch(rental.UserID, "Rental cancelled",
		fmt.Sprintf("Rental #%d has been cancelled.", rental.ID))
	return rental, nil
}

// Extend moves the end date of an active rental. The new end date is
// always persisted; billing only changes when the recomputed total
// exceeds the current one, in which case one delta installment is
// appended due on the new end date.
func (s *rentalService) Extend(ctx context.Context, rentalID int32, newEnd time.Time) (*domain.Rental, *domain.Installment, error) {
	if newEnd.IsZero() {
		return nil, nil, domain.NewValidationError("end_date", "is required")
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, nil, domain.NewInvalidTransition(rental.Status, "extend",
			fmt.Sprintf("only an active rental can be extended, current status is %s", rental.Status))
	}
	if !newEnd.After(rental.EndDate) {
		return nil, nil, &domain.InvalidExtensionError{
			Reason: fmt.Sprintf("new end date %s must be later than the current end date %s",
				newEnd.Format("2006-01-02"), rental.EndDate.Format("2006-01-02")),
		}
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	tiers, err := s.vehicleRepo.ListTiers(ctx, rental.VehicleID)
	if err != nil {
		return nil, nil, err
	}

	newDays, err := utils.TotalDays(rental.StartDate, newEnd)
	if err != nil {
		return nil, nil, &domain.InvalidExtensionError{Reason: err.Error()}
	}
	newTotal, err := utils.ResolvePrice(vehicle, tiers, newDays)
	if err != nil {
		return nil, nil, err
	}

	delta := newTotal.Sub(rental.TotalPrice)
	rental.EndDate = newEnd

	var appended *domain.Installment
	if delta.IsPositive() {
		rental.TotalPrice = newTotal
		appended = &domain.Installment{
			RentalID: rental.ID,
			UserID:   rental.UserID,
			DueDate:  newEnd,
			Amount:   delta,
		}
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, nil, err
	}
	if appended != nil {
		if err := s.installmentRepo.Append(ctx, appended); err != nil {
			return nil, nil, err
		}
		s.notifier.Dispatch(rental.UserID, "Rental extended",
			fmt.Sprintf("Rental #%d now ends on %s. An additional installment of %s is due on the new end date.",
				rental.ID, newEnd.Format("2006-01-02"), delta.StringFixed(2)))
	}

	return rental, appended, nil
}

func (s *rentalService) ListInstallments(ctx context.Context, userID int32, isStaff bool, rentalID int32) ([]domain.Installment, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !isStaff && rental.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s.installmentRepo.ListByRental(ctx, rentalID)
}

func (s *rentalService) PayInstallment(ctx context.Context, installmentID int32) error {
	return s.installmentRepo.MarkPaid(ctx, installmentID)
}
