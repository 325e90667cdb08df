package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type upholsteryRepository struct {
	db *sql.DB
}

func NewUpholsteryRepository(db *sql.DB) repository.UpholsteryRepository {
	return &upholsteryRepository{db: db}
}

func (r *upholsteryRepository) CreateMaterial(ctx context.Context, m *domain.UpholsteryMaterial) error {
	query := `INSERT INTO upholstery_materials (name, price) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Name, m.Price).Scan(&m.ID)
}

func (r *upholsteryRepository) ListMaterials(ctx context.Context) ([]domain.UpholsteryMaterial, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM upholstery_materials ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UpholsteryMaterial
	for rows.Next() {
		var m domain.UpholsteryMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Price); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *upholsteryRepository) GetMaterialByID(ctx context.Context, id int32) (*domain.UpholsteryMaterial, error) {
	m := &domain.UpholsteryMaterial{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name, price FROM upholstery_materials WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *upholsteryRepository) CreateType(ctx context.Context, t *domain.UpholsteryType) error {
	query := `INSERT INTO upholstery_types (name, description, base_price, estimated_hours, available)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Name, t.Description, t.BasePrice, t.EstimatedHours, t.Available).Scan(&t.ID)
}

func (r *upholsteryRepository) ListTypes(ctx context.Context) ([]domain.UpholsteryType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, base_price, estimated_hours, available FROM upholstery_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UpholsteryType
	for rows.Next() {
		var t domain.UpholsteryType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.BasePrice, &t.EstimatedHours, &t.Available); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *upholsteryRepository) GetTypeByID(ctx context.Context, id int32) (*domain.UpholsteryType, error) {
	t := &domain.UpholsteryType{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name, description, base_price, estimated_hours, available FROM upholstery_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.BasePrice, &t.EstimatedHours, &t.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

const bookingColumns = `id, user_id, material_id, type_id, vehicle_info, scheduled, status, quoted_price, created_on, updated_on`

func (r *upholsteryRepository) CreateBooking(ctx context.Context, b *domain.UpholsteryBooking) error {
	query := `INSERT INTO upholstery_bookings (user_id, material_id, type_id, vehicle_info, scheduled, status, quoted_price, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		b.UserID, b.MaterialID, b.TypeID, b.VehicleInfo, b.Scheduled, b.Status, b.QuotedPrice, now, now,
	).Scan(&b.ID)
}

func scanBooking(row interface{ Scan(...any) error }) (*domain.UpholsteryBooking, error) {
	b := &domain.UpholsteryBooking{}
	err := row.Scan(&b.ID, &b.UserID, &b.MaterialID, &b.TypeID, &b.VehicleInfo, &b.Scheduled, &b.Status, &b.QuotedPrice, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *upholsteryRepository) GetBookingByID(ctx context.Context, id int32) (*domain.UpholsteryBooking, error) {
	return scanBooking(r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM upholstery_bookings WHERE id = $1`, id))
}

func (r *upholsteryRepository) UpdateBooking(ctx context.Context, b *domain.UpholsteryBooking) error {
	query := `UPDATE upholstery_bookings SET vehicle_info=$1, scheduled=$2, status=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, b.VehicleInfo, b.Scheduled, b.Status, time.Now(), b.ID)
	return err
}

func (r *upholsteryRepository) ListBookingsByUser(ctx context.Context, userID int32) ([]domain.UpholsteryBooking, error) {
	return r.listBookings(ctx, `SELECT `+bookingColumns+` FROM upholstery_bookings WHERE user_id = $1 ORDER BY created_on DESC`, userID)
}

func (r *upholsteryRepository) ListBookings(ctx context.Context) ([]domain.UpholsteryBooking, error) {
	return r.listBookings(ctx, `SELECT `+bookingColumns+` FROM upholstery_bookings ORDER BY created_on DESC`)
}

func (r *upholsteryRepository) listBookings(ctx context.Context, query string, args ...any) ([]domain.UpholsteryBooking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UpholsteryBooking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
