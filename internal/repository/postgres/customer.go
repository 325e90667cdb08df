package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.CustomerData) error {
	query := `INSERT INTO customer_data (first_name, middle_name, last_name, phone_number, id_number, nationality, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.FirstName, c.MiddleName, c.LastName, c.PhoneNumber, c.IDNumber, c.Nationality, now, now,
	).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.CustomerData, error) {
	c := &domain.CustomerData{}
	query := `SELECT id, first_name, middle_name, last_name, phone_number, id_number, nationality, created_on, updated_on
	          FROM customer_data WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.PhoneNumber, &c.IDNumber, &c.Nationality, &c.CreatedOn, &c.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.CustomerData, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customer_data`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, first_name, middle_name, last_name, phone_number, id_number, nationality, created_on, updated_on
	          FROM customer_data ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.CustomerData
	for rows.Next() {
		var c domain.CustomerData
		if err := rows.Scan(&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.PhoneNumber, &c.IDNumber, &c.Nationality, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.CustomerData) error {
	query := `UPDATE customer_data SET first_name=$1, middle_name=$2, last_name=$3, phone_number=$4, id_number=$5, nationality=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.FirstName, c.MiddleName, c.LastName, c.PhoneNumber, c.IDNumber, c.Nationality, time.Now(), c.ID)
	return err
}
