package service

import (
	"context"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type brandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

func (s *brandService) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	if brand.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	return s.brandRepo.Create(ctx, brand)
}

func (s *brandService) GetBrand(ctx context.Context, id int32) (*domain.Brand, error) {
	return s.brandRepo.GetByID(ctx, id)
}

func (s *brandService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

func (s *brandService) UpdateBrand(ctx context.Context, brand *domain.Brand) error {
	if brand.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if _, err := s.brandRepo.GetByID(ctx, brand.ID); err != nil {
		return err
	}
	return s.brandRepo.Update(ctx, brand)
}

func (s *brandService) DeleteBrand(ctx context.Context, id int32) error {
	if _, err := s.brandRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.brandRepo.Delete(ctx, id)
}
