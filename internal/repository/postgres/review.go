package postgres

import (
	"context"
	"database/sql"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, vehicle_id, name, email, comment, comfort_rating, interior_rating,
	exterior_rating, price_rating, performance_rating, reliability_rating, created_on`

func (r *reviewRepository) Create(ctx context.Context, rv *domain.VehicleReview) error {
	query := `INSERT INTO vehicle_reviews (vehicle_id, name, email, comment, comfort_rating,
	              interior_rating, exterior_rating, price_rating, performance_rating,
	              reliability_rating, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		rv.VehicleID, rv.Name, rv.Email, rv.Comment,
		rv.ComfortRating, rv.InteriorRating, rv.ExteriorRating,
		rv.PriceRating, rv.PerformanceRating, rv.ReliabilityRating,
		time.Now(),
	).Scan(&rv.ID, &rv.CreatedOn)
}

func (r *reviewRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.VehicleReview, error) {
	query := `SELECT ` + reviewColumns + `
	          FROM vehicle_reviews WHERE vehicle_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.VehicleReview
	for rows.Next() {
		var rv domain.VehicleReview
		if err := rows.Scan(&rv.ID, &rv.VehicleID, &rv.Name, &rv.Email, &rv.Comment,
			&rv.ComfortRating, &rv.InteriorRating, &rv.ExteriorRating,
			&rv.PriceRating, &rv.PerformanceRating, &rv.ReliabilityRating, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
