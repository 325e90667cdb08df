package service

import (
	"context"
	"fmt"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type upholsteryService struct {
	upholsteryRepo repository.UpholsteryRepository
	notifier       *Notifier
}

func NewUpholsteryService(upholsteryRepo repository.UpholsteryRepository, notifier *Notifier) UpholsteryService {
	return &upholsteryService{upholsteryRepo: upholsteryRepo, notifier: notifier}
}

func (s *upholsteryService) AddMaterial(ctx context.Context, m *domain.UpholsteryMaterial) error {
	if m.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if m.Price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	return s.upholsteryRepo.CreateMaterial(ctx, m)
}

func (s *upholsteryService) ListMaterials(ctx context.Context) ([]domain.UpholsteryMaterial, error) {
	return s.upholsteryRepo.ListMaterials(ctx)
}

func (s *upholsteryService) AddType(ctx context.Context, t *domain.UpholsteryType) error {
	if t.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if t.BasePrice.IsNegative() {
		return domain.NewValidationError("base_price", "must not be negative")
	}
	return s.upholsteryRepo.CreateType(ctx, t)
}

func (s *upholsteryService) ListTypes(ctx context.Context) ([]domain.UpholsteryType, error) {
	return s.upholsteryRepo.ListTypes(ctx)
}

// CreateBooking snapshots the quote from the current catalog prices so
// later edits to the material or type do not change existing bookings.
func (s *upholsteryService) CreateBooking(ctx context.Context, userID, materialID, typeID int32, vehicleInfo string, scheduled time.Time) (*domain.UpholsteryBooking, error) {
	if scheduled.IsZero() {
		return nil, domain.NewValidationError("scheduled", "is required")
	}
	material, err := s.upholsteryRepo.GetMaterialByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	svcType, err := s.upholsteryRepo.GetTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if !svcType.Available {
		return nil, domain.NewValidationError("type_id", "this service type is not currently offered")
	}

	booking := &domain.UpholsteryBooking{
		UserID:      userID,
		MaterialID:  materialID,
		TypeID:      typeID,
		VehicleInfo: vehicleInfo,
		Scheduled:   scheduled,
		Status:      domain.BookingStatusPending,
		QuotedPrice: svcType.BasePrice.Add(material.Price),
	}
	if err := s.upholsteryRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.notifier.Dispatch(userID, "Upholstery booking received",
		fmt.Sprintf("Your %s booking for %s is pending confirmation. Quoted price: %s.",
			svcType.Name, scheduled.Format("2006-01-02"), booking.QuotedPrice.StringFixed(2)))
	return booking, nil
}

func (s *upholsteryService) GetBooking(ctx context.Context, userID int32, isStaff bool, bookingID int32) (*domain.UpholsteryBooking, error) {
	booking, err := s.upholsteryRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isStaff && booking.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}

func (s *upholsteryService) ListBookings(ctx context.Context, userID int32, isStaff bool) ([]domain.UpholsteryBooking, error) {
	if isStaff {
		return s.upholsteryRepo.ListBookings(ctx)
	}
	return s.upholsteryRepo.ListBookingsByUser(ctx, userID)
}

func (s *upholsteryService) ConfirmBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusPending, domain.BookingStatusConfirmed, "confirm")
}

func (s *upholsteryService) StartBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusConfirmed, domain.BookingStatusInProgress, "start")
}

func (s *upholsteryService) CompleteBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error) {
	booking, err := s.transition(ctx, bookingID, domain.BookingStatusInProgress, domain.BookingStatusCompleted, "complete")
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(booking.UserID, "Upholstery work completed",
		fmt.Sprintf("Booking #%d is finished and ready for pickup.", booking.ID))
	return booking, nil
}

func (s *upholsteryService) CancelBooking(ctx context.Context, userID int32, isStaff bool, bookingID int32) (*domain.UpholsteryBooking, error) {
	booking, err := s.upholsteryRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isStaff && booking.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if booking.Status == domain.BookingStatusCompleted || booking.Status == domain.BookingStatusCancelled {
		return nil, domain.NewValidationError("status", fmt.Sprintf("a %s booking cannot be cancelled", booking.Status))
	}
	booking.Status = domain.BookingStatusCancelled
	if err := s.upholsteryRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *upholsteryService) transition(ctx context.Context, bookingID int32, from, to domain.BookingStatus, op string) (*domain.UpholsteryBooking, error) {
	booking, err := s.upholsteryRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != from {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("cannot %s a booking in status %s", op, booking.Status))
	}
	booking.Status = to
	if err := s.upholsteryRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
