package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
	"wheelhouse-backend/internal/utils"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	brandRepo   repository.BrandRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, brandRepo repository.BrandRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, brandRepo: brandRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.Model == "" {
		return domain.NewValidationError("model", "is required")
	}
	if vehicle.Price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	if vehicle.AvailableUnits < 0 {
		return domain.NewValidationError("available_units", "must not be negative")
	}
	if _, err := s.brandRepo.GetByID(ctx, vehicle.BrandID); err != nil {
		return domain.NewValidationError("brand_id", "unknown brand")
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, []domain.PriceTier, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if brand, err := s.brandRepo.GetByID(ctx, vehicle.BrandID); err == nil {
		vehicle.Brand = brand
	}
	tiers, err := s.vehicleRepo.ListTiers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return vehicle, tiers, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.vehicleRepo.List(ctx, page, pageSize)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicle.ID); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) AddTier(ctx context.Context, tier *domain.PriceTier) error {
	if tier.MinDays < 1 {
		return domain.NewValidationError("min_days", "must be at least 1")
	}
	if tier.MaxDays != nil && *tier.MaxDays < tier.MinDays {
		return domain.NewValidationError("max_days", "must not be less than min_days")
	}
	if tier.PricePerDay.IsNegative() {
		return domain.NewValidationError("price_per_day", "must not be negative")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, tier.VehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.CreateTier(ctx, tier)
}

func (s *vehicleService) ListTiers(ctx context.Context, vehicleID int32) ([]domain.PriceTier, error) {
	return s.vehicleRepo.ListTiers(ctx, vehicleID)
}

func (s *vehicleService) DeleteTier(ctx context.Context, tierID int32) error {
	return s.vehicleRepo.DeleteTier(ctx, tierID)
}

// Quote prices a prospective rental without creating anything.
func (s *vehicleService) Quote(ctx context.Context, vehicleID int32, start, end time.Time) (int32, decimal.Decimal, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	days, err := utils.TotalDays(start, end)
	if err != nil {
		return 0, decimal.Zero, domain.NewValidationError("end_date", err.Error())
	}
	tiers, err := s.vehicleRepo.ListTiers(ctx, vehicleID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	total, err := utils.ResolvePrice(vehicle, tiers, days)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return days, total, nil
}
