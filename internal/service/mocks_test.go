package service_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"wheelhouse-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListEndingOn(ctx context.Context, day time.Time, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, day, status)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) TryActivate(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockVehicleRepo) ReleaseUnit(ctx context.Context, vehicleID int32) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}
func (m *MockVehicleRepo) CreateTier(ctx context.Context, tier *domain.PriceTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListTiers(ctx context.Context, vehicleID int32) ([]domain.PriceTier, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.PriceTier), args.Error(1)
}
func (m *MockVehicleRepo) DeleteTier(ctx context.Context, tierID int32) error {
	args := m.Called(ctx, tierID)
	return args.Error(0)
}

// MockInstallmentRepo
type MockInstallmentRepo struct {
	mock.Mock
}

func (m *MockInstallmentRepo) CreateSchedule(ctx context.Context, rentalID int32, installments []domain.Installment) error {
	args := m.Called(ctx, rentalID, installments)
	return args.Error(0)
}
func (m *MockInstallmentRepo) Append(ctx context.Context, installment *domain.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}
func (m *MockInstallmentRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Installment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Installment), args.Error(1)
}
func (m *MockInstallmentRepo) CountByRental(ctx context.Context, rentalID int32) (int32, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockInstallmentRepo) ListUnpaidDueBetween(ctx context.Context, from, to time.Time) ([]domain.Installment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Installment), args.Error(1)
}
func (m *MockInstallmentRepo) MarkPaid(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUpholsteryRepo
type MockUpholsteryRepo struct {
	mock.Mock
}

func (m *MockUpholsteryRepo) CreateMaterial(ctx context.Context, mat *domain.UpholsteryMaterial) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}
func (m *MockUpholsteryRepo) ListMaterials(ctx context.Context) ([]domain.UpholsteryMaterial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UpholsteryMaterial), args.Error(1)
}
func (m *MockUpholsteryRepo) GetMaterialByID(ctx context.Context, id int32) (*domain.UpholsteryMaterial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpholsteryMaterial), args.Error(1)
}
func (m *MockUpholsteryRepo) CreateType(ctx context.Context, t *domain.UpholsteryType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockUpholsteryRepo) ListTypes(ctx context.Context) ([]domain.UpholsteryType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UpholsteryType), args.Error(1)
}
func (m *MockUpholsteryRepo) GetTypeByID(ctx context.Context, id int32) (*domain.UpholsteryType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpholsteryType), args.Error(1)
}
func (m *MockUpholsteryRepo) CreateBooking(ctx context.Context, b *domain.UpholsteryBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockUpholsteryRepo) GetBookingByID(ctx context.Context, id int32) (*domain.UpholsteryBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpholsteryBooking), args.Error(1)
}
func (m *MockUpholsteryRepo) UpdateBooking(ctx context.Context, b *domain.UpholsteryBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockUpholsteryRepo) ListBookingsByUser(ctx context.Context, userID int32) ([]domain.UpholsteryBooking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UpholsteryBooking), args.Error(1)
}
func (m *MockUpholsteryRepo) ListBookings(ctx context.Context) ([]domain.UpholsteryBooking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UpholsteryBooking), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error {
	args := m.Called(ctx, email, name, rentalID, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendInstallmentReminder(ctx context.Context, email, name string, amount decimal.Decimal, dueDate time.Time) error {
	args := m.Called(ctx, email, name, amount, dueDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error {
	args := m.Called(ctx, email, name, rentalID, endDate)
	return args.Error(0)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.VehicleReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.VehicleReview, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.VehicleReview), args.Error(1)
}
