package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository"
)

type supportRepository struct {
	db *sql.DB
}

func NewSupportRepository(db *sql.DB) repository.SupportRepository {
	return &supportRepository{db: db}
}

const ticketColumns = `id, user_id, subject, description, status, created_on, updated_on, resolved_at`

func (r *supportRepository) CreateTicket(ctx context.Context, t *domain.SupportTicket) error {
	query := `INSERT INTO support_tickets (user_id, subject, description, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.UserID, t.Subject, t.Description, t.Status, time.Now()).Scan(&t.ID)
}

func (r *supportRepository) GetTicketByID(ctx context.Context, id int32) (*domain.SupportTicket, error) {
	t := &domain.SupportTicket{}
	err := r.db.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id).
		Scan(&t.ID, &t.UserID, &t.Subject, &t.Description, &t.Status, &t.CreatedOn, &t.UpdatedOn, &t.ResolvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *supportRepository) UpdateTicket(ctx context.Context, t *domain.SupportTicket) error {
	query := `UPDATE support_tickets SET status=$1, resolved_at=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, t.Status, t.ResolvedAt, time.Now(), t.ID)
	return err
}

func (r *supportRepository) ListTicketsByUser(ctx context.Context, userID int32) ([]domain.SupportTicket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE user_id = $1 ORDER BY created_on DESC`, userID)
}

func (r *supportRepository) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM support_tickets ORDER BY created_on DESC`)
}

func (r *supportRepository) list(ctx context.Context, query string, args ...any) ([]domain.SupportTicket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SupportTicket
	for rows.Next() {
		var t domain.SupportTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Description, &t.Status, &t.CreatedOn, &t.UpdatedOn, &t.ResolvedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
