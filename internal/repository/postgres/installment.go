package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type installmentRepository struct {
	db *sql.DB
}

func NewInstallmentRepository(db *sql.DB) repository.InstallmentRepository {
	return &installmentRepository{db: db}
}

// CreateSchedule inserts the full schedule for a rental in one
// transaction. The insert is skipped when installments already exist,
// and every row goes through ON CONFLICT (rental_id, seq) DO NOTHING so
// two concurrent first saves cannot double-schedule even if both pass
// the count check.
func (r *installmentRepository) CreateSchedule(ctx context.Context, rentalID int32, installments []domain.Installment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schedule tx: %w", err)
	}
	defer tx.Rollback()

	var count int32
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM installments WHERE rental_id = $1`, rentalID).Scan(&count); err != nil {
		return fmt.Errorf("count installments: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO installments (rental_id, user_id, seq, due_date, amount, is_paid)
	          VALUES ($1, $2, $3, $4, $5, FALSE)
	          ON CONFLICT (rental_id, seq) DO NOTHING`
	for _, inst := range installments {
		if _, err := tx.ExecContext(ctx, query, rentalID, inst.UserID, inst.Seq, inst.DueDate, inst.Amount); err != nil {
			return fmt.Errorf("insert installment seq %d: %w", inst.Seq, err)
		}
	}

	return tx.Commit()
}

// Append adds one installment with the next free sequence number. Used
// for extension deltas.
func (r *installmentRepository) Append(ctx context.Context, inst *domain.Installment) error {
	query := `INSERT INTO installments (rental_id, user_id, seq, due_date, amount, is_paid)
	          VALUES ($1, $2, (SELECT COALESCE(MAX(seq), 0) + 1 FROM installments WHERE rental_id = $1), $3, $4, FALSE)
	          RETURNING id, seq`
	return r.db.QueryRowContext(ctx, query, inst.RentalID, inst.UserID, inst.DueDate, inst.Amount).Scan(&inst.ID, &inst.Seq)
}

func (r *installmentRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.Installment, error) {
	query := `SELECT id, rental_id, user_id, seq, due_date, amount, is_paid FROM installments WHERE rental_id = $1 ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Installment
	for rows.Next() {
		var inst domain.Installment
		if err := rows.Scan(&inst.ID, &inst.RentalID, &inst.UserID, &inst.Seq, &inst.DueDate, &inst.Amount, &inst.IsPaid); err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func (r *installmentRepository) CountByRental(ctx context.Context, rentalID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM installments WHERE rental_id = $1`, rentalID).Scan(&count)
	return count, err
}

// ListUnpaidDueBetween returns unpaid installments whose due date falls
// inside [from, to], inclusive. Used by the payment-reminder sweep.
func (r *installmentRepository) ListUnpaidDueBetween(ctx context.Context, from, to time.Time) ([]domain.Installment, error) {
	query := `SELECT id, rental_id, user_id, seq, due_date, amount, is_paid
	          FROM installments
	          WHERE is_paid = FALSE AND due_date::date BETWEEN $1::date AND $2::date
	          ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Installment
	for rows.Next() {
		var inst domain.Installment
		if err := rows.Scan(&inst.ID, &inst.RentalID, &inst.UserID, &inst.Seq, &inst.DueDate, &inst.Amount, &inst.IsPaid); err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func (r *installmentRepository) MarkPaid(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE installments SET is_paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
