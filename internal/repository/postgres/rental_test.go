package postgres_test

import (
	"context"
	"testing"
	"time"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		customerID := int32(7)
		rental := &domain.Rental{
			CustomerID: &customerID,
			VehicleID:  2,
			UserID:     3,
			StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			Status:     domain.RentalStatusPending,
			TotalPrice: decimal.RequireFromString("450.00"),
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CustomerID, rental.VehicleID, rental.UserID, rental.StartDate, rental.EndDate, rental.Status, rental.TotalPrice, rental.InspectionFormKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(1, time.Now(), time.Now()))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "user_id", "start_date", "end_date", "status", "total_price", "inspection_form_key", "created_on", "updated_on"}).
			AddRow(1, nil, 2, 3, time.Now(), time.Now().Add(15*24*time.Hour), "active", "450.00", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Nil(t, rental.CustomerID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rental, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, rental)
	})
}

func TestRentalRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs(int32(3), "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "user_id", "start_date", "end_date", "status", "total_price", "inspection_form_key", "created_on", "updated_on"}).
		AddRow(1, nil, 2, 3, time.Now(), time.Now(), "active", "450.00", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE user_id = \\$1").
		WithArgs(int32(3), "active", int32(20), int32(0)).
		WillReturnRows(rows)

	rentals, total, err := repo.ListByUser(ctx, 3, "active", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, rentals, 1)
}

func TestRentalRepository_ListEndingOn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	tomorrow := time.Now().Add(24 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "user_id", "start_date", "end_date", "status", "total_price", "inspection_form_key", "created_on", "updated_on"}).
		AddRow(1, nil, 2, 3, time.Now(), tomorrow, "active", "450.00", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status = \\$1").
		WithArgs(domain.RentalStatusActive, sqlmock.AnyArg()).
		WillReturnRows(rows)

	rentals, err := repo.ListEndingOn(ctx, tomorrow, domain.RentalStatusActive)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.Equal(t, int32(1), rentals[0].ID)
}
