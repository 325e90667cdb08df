package postgres

import (
	"context"
	"database/sql"
	"errors"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type brandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, b *domain.Brand) error {
	query := `INSERT INTO brands (name, description, "primary") VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name, b.Description, b.Primary).Scan(&b.ID)
}

func (r *brandRepository) GetByID(ctx context.Context, id int32) (*domain.Brand, error) {
	b := &domain.Brand{}
	query := `SELECT id, name, description, "primary" FROM brands WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.Description, &b.Primary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	query := `SELECT id, name, description, "primary" FROM brands ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Primary); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	query := `UPDATE brands SET name = $1, description = $2, "primary" = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, b.Name, b.Description, b.Primary, b.ID)
	return err
}

func (r *brandRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	return err
}
