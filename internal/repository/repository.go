package repository

import (
	"context"
	"time"

	"wheelhouse-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error

	// Inventory ledger. TryActivate consumes one rental unit in a single
	// conditional update so concurrent activations cannot oversell;
	// it returns domain.ErrInsufficientInventory when no units remain.
	// ReleaseUnit restores one unit on completion/cancellation.
	TryActivate(ctx context.Context, vehicleID int32) error
	ReleaseUnit(ctx context.Context, vehicleID int32) error

	// Price tiers
	CreateTier(ctx context.Context, tier *domain.PriceTier) error
	ListTiers(ctx context.Context, vehicleID int32) ([]domain.PriceTier, error)
	DeleteTier(ctx context.Context, tierID int32) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.VehicleReview) error
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.VehicleReview, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.CustomerData) error
	GetByID(ctx context.Context, id int32) (*domain.CustomerData, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.CustomerData, int32, error)
	Update(ctx context.Context, customer *domain.CustomerData) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListEndingOn(ctx context.Context, day time.Time, status domain.RentalStatus) ([]domain.Rental, error)
}

type InstallmentRepository interface {
	// CreateSchedule inserts a full schedule in one transaction. It is a
	// no-op when any installment already exists for the rental, and the
	// (rental_id, seq) uniqueness constraint backs that check under
	// concurrent first saves.
	CreateSchedule(ctx context.Context, rentalID int32, installments []domain.Installment) error
	Append(ctx context.Context, installment *domain.Installment) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Installment, error)
	CountByRental(ctx context.Context, rentalID int32) (int32, error)
	ListUnpaidDueBetween(ctx context.Context, from, to time.Time) ([]domain.Installment, error)
	MarkPaid(ctx context.Context, id int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type UpholsteryRepository interface {
	CreateMaterial(ctx context.Context, m *domain.UpholsteryMaterial) error
	ListMaterials(ctx context.Context) ([]domain.UpholsteryMaterial, error)
	GetMaterialByID(ctx context.Context, id int32) (*domain.UpholsteryMaterial, error)
	CreateType(ctx context.Context, t *domain.UpholsteryType) error
	ListTypes(ctx context.Context) ([]domain.UpholsteryType, error)
	GetTypeByID(ctx context.Context, id int32) (*domain.UpholsteryType, error)

	CreateBooking(ctx context.Context, b *domain.UpholsteryBooking) error
	GetBookingByID(ctx context.Context, id int32) (*domain.UpholsteryBooking, error)
	UpdateBooking(ctx context.Context, b *domain.UpholsteryBooking) error
	ListBookingsByUser(ctx context.Context, userID int32) ([]domain.UpholsteryBooking, error)
	ListBookings(ctx context.Context) ([]domain.UpholsteryBooking, error)
}

type SupportRepository interface {
	CreateTicket(ctx context.Context, t *domain.SupportTicket) error
	GetTicketByID(ctx context.Context, id int32) (*domain.SupportTicket, error)
	UpdateTicket(ctx context.Context, t *domain.SupportTicket) error
	ListTicketsByUser(ctx context.Context, userID int32) ([]domain.SupportTicket, error)
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
}
