package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh, user
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type BrandService interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	GetBrand(ctx context.Context, id int32) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, brand *domain.Brand) error
	DeleteBrand(ctx context.Context, id int32) error
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, []domain.PriceTier, error)
	ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	AddTier(ctx context.Context, tier *domain.PriceTier) error
	ListTiers(ctx context.Context, vehicleID int32) ([]domain.PriceTier, error)
	DeleteTier(ctx context.Context, tierID int32) error
	Quote(ctx context.Context, vehicleID int32, start, end time.Time) (int32, decimal.Decimal, error) // days, total
}

type ReviewService interface {
	CreateReview(ctx context.Context, review *domain.VehicleReview) error
	ListReviews(ctx context.Context, vehicleID int32) ([]domain.VehicleReview, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.CustomerData) error
	GetCustomer(ctx context.Context, id int32) (*domain.CustomerData, error)
	ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.CustomerData, int32, error)
	UpdateCustomer(ctx context.Context, customer *domain.CustomerData) error
}

// CreateRentalInput carries everything the lifecycle engine needs to
// open a rental. Staff creates skip the pending/confirmed steps.
type CreateRentalInput struct {
	UserID            int32
	CustomerID        *int32
	VehicleID         int32
	StartDate         time.Time
	EndDate           time.Time
	TotalPrice        *decimal.Decimal // optional override; resolved from tiers when nil
	InspectionFormKey string
	Staff             bool
}

type RentalService interface {
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, []domain.Installment, error)
	GetRental(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, userID int32, isStaff bool, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	Confirm(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Start(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Complete(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Cancel(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error)
	Extend(ctx context.Context, rentalID int32, newEnd time.Time) (*domain.Rental, *domain.Installment, error)
	ListInstallments(ctx context.Context, userID int32, isStaff bool, rentalID int32) ([]domain.Installment, error)
	PayInstallment(ctx context.Context, installmentID int32) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type UpholsteryService interface {
	AddMaterial(ctx context.Context, m *domain.UpholsteryMaterial) error
	ListMaterials(ctx context.Context) ([]domain.UpholsteryMaterial, error)
	AddType(ctx context.Context, t *domain.UpholsteryType) error
	ListTypes(ctx context.Context) ([]domain.UpholsteryType, error)
	CreateBooking(ctx context.Context, userID, materialID, typeID int32, vehicleInfo string, scheduled time.Time) (*domain.UpholsteryBooking, error)
	GetBooking(ctx context.Context, userID int32, isStaff bool, bookingID int32) (*domain.UpholsteryBooking, error)
	ListBookings(ctx context.Context, userID int32, isStaff bool) ([]domain.UpholsteryBooking, error)
	ConfirmBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error)
	StartBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error)
	CompleteBooking(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error)
	CancelBooking(ctx context.Context, userID int32, isStaff bool, bookingID int32) (*domain.UpholsteryBooking, error)
}

type SupportService interface {
	OpenTicket(ctx context.Context, userID int32, subject, description string) (*domain.SupportTicket, error)
	GetTicket(ctx context.Context, userID int32, isStaff bool, ticketID int32) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context, userID int32, isStaff bool) ([]domain.SupportTicket, error)
	ResolveTicket(ctx context.Context, ticketID int32) (*domain.SupportTicket, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error
	SendInstallmentReminder(ctx context.Context, email, name string, amount decimal.Decimal, dueDate time.Time) error
	SendReturnReminder(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error
}
