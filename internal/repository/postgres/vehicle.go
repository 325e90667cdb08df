package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (brand_id, model, year, price, currency, status, available_units, is_available, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		v.BrandID, v.Model, v.Year, v.Price, v.Currency, v.Status, v.AvailableUnits, v.IsAvailable, now, now,
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, brand_id, model, year, price, currency, status, available_units, is_available, created_on, updated_on
	          FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.BrandID, &v.Model, &v.Year, &v.Price, &v.Currency, &v.Status, &v.AvailableUnits, &v.IsAvailable, &v.CreatedOn, &v.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, brand_id, model, year, price, currency, status, available_units, is_available, created_on, updated_on
	          FROM vehicles ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.BrandID, &v.Model, &v.Year, &v.Price, &v.Currency, &v.Status, &v.AvailableUnits, &v.IsAvailable, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand_id=$1, model=$2, year=$3, price=$4, currency=$5, status=$6, available_units=$7, is_available=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, v.BrandID, v.Model, v.Year, v.Price, v.Currency, v.Status, v.AvailableUnits, v.IsAvailable, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

// TryActivate consumes one rental unit. The guard and the decrement run
// in a single conditional UPDATE so two concurrent activations can never
// both pass an available_units > 0 check and push the counter below zero.
func (r *vehicleRepository) TryActivate(ctx context.Context, vehicleID int32) error {
	query := `UPDATE vehicles
	          SET available_units = available_units - 1,
	              status = CASE WHEN available_units - 1 <= 0 THEN 'rented' ELSE status END,
	              is_available = CASE WHEN available_units - 1 <= 0 THEN FALSE ELSE is_available END,
	              updated_on = $1
	          WHERE id = $2 AND available_units > 0`
	result, err := r.db.ExecContext(ctx, query, time.Now(), vehicleID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientInventory
	}
	return nil
}

// ReleaseUnit restores the unit consumed by TryActivate when a rental
// completes or an active rental is cancelled.
func (r *vehicleRepository) ReleaseUnit(ctx context.Context, vehicleID int32) error {
	query := `UPDATE vehicles
	          SET available_units = available_units + 1,
	              status = CASE WHEN status = 'rented' THEN 'available' ELSE status END,
	              is_available = CASE WHEN status IN ('rented', 'available') THEN TRUE ELSE is_available END,
	              updated_on = $1
	          WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), vehicleID)
	return err
}

func (r *vehicleRepository) CreateTier(ctx context.Context, t *domain.PriceTier) error {
	query := `INSERT INTO price_tiers (vehicle_id, min_days, max_days, price_per_day) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.VehicleID, t.MinDays, t.MaxDays, t.PricePerDay).Scan(&t.ID)
}

func (r *vehicleRepository) ListTiers(ctx context.Context, vehicleID int32) ([]domain.PriceTier, error) {
	query := `SELECT id, vehicle_id, min_days, max_days, price_per_day FROM price_tiers WHERE vehicle_id = $1 ORDER BY min_days`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.PriceTier
	for rows.Next() {
		var t domain.PriceTier
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.MinDays, &t.MaxDays, &t.PricePerDay); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *vehicleRepository) DeleteTier(ctx context.Context, tierID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM price_tiers WHERE id = $1`, tierID)
	return err
}
