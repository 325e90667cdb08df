package service

import (
	"context"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	vehicleRepo repository.VehicleRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, vehicleRepo repository.VehicleRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, vehicleRepo: vehicleRepo}
}

func (s *reviewService) CreateReview(ctx context.Context, review *domain.VehicleReview) error {
	if review.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if review.Email == "" {
		return domain.NewValidationError("email", "is required")
	}
	if review.Comment == "" {
		return domain.NewValidationError("comment", "is required")
	}

	ratings := []struct {
		field string
		value int32
	}{
		{"comfort_rating", review.ComfortRating},
		{"interior_rating", review.InteriorRating},
		{"exterior_rating", review.ExteriorRating},
		{"price_rating", review.PriceRating},
		{"performance_rating", review.PerformanceRating},
		{"reliability_rating", review.ReliabilityRating},
	}
	for _, r := range ratings {
		if r.value < 1 || r.value > 5 {
			return domain.NewValidationError(r.field, "must be between 1 and 5")
		}
	}

	if _, err := s.vehicleRepo.GetByID(ctx, review.VehicleID); err != nil {
		return err
	}
	return s.reviewRepo.Create(ctx, review)
}

func (s *reviewService) ListReviews(ctx context.Context, vehicleID int32) ([]domain.VehicleReview, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByVehicle(ctx, vehicleID)
}
