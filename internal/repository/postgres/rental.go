package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, vehicle_id, user_id, start_date, end_date, status, total_price, inspection_form_key, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, vehicle_id, user_id, start_date, end_date, status, total_price, inspection_form_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rt.CustomerID, rt.VehicleID, rt.UserID, rt.StartDate, rt.EndDate, rt.Status, rt.TotalPrice, rt.InspectionFormKey, now, now,
	).Scan(&rt.ID, &rt.CreatedOn, &rt.UpdatedOn)
}

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(
		&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.UserID, &rt.StartDate, &rt.EndDate,
		&rt.Status, &rt.TotalPrice, &rt.InspectionFormKey, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, end_date=$2, total_price=$3, inspection_form_key=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.EndDate, rt.TotalPrice, rt.InspectionFormKey, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	base := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1`
	args := []any{userID}
	argIdx := 2
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	return r.listPage(ctx, base, args, argIdx, page, pageSize)
}

func (r *rentalRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	base := `SELECT ` + rentalColumns + ` FROM rentals WHERE TRUE`
	var args []any
	argIdx := 1
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	return r.listPage(ctx, base, args, argIdx, page, pageSize)
}

func (r *rentalRepository) listPage(ctx context.Context, base string, args []any, argIdx int, page, pageSize int32) ([]domain.Rental, int32, error) {
	var count int32
	countQuery := "SELECT count(*) FROM (" + base + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := base + fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

// ListEndingOn returns rentals in the given status whose end date falls
// on the given calendar day. Used by the return-reminder sweep.
func (r *rentalRepository) ListEndingOn(ctx context.Context, day time.Time, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date::date = $2::date`
	rows, err := r.db.QueryContext(ctx, query, status, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
