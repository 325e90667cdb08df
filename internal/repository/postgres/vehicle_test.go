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

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		vehicle := &domain.Vehicle{
			BrandID:        1,
			Model:          "Corolla",
			Year:           2022,
			Price:          decimal.RequireFromString("45.00"),
			Currency:       "USD",
			Status:         domain.VehicleStatusAvailable,
			AvailableUnits: 3,
			IsAvailable:    true,
		}

		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(vehicle.BrandID, vehicle.Model, vehicle.Year, vehicle.Price, vehicle.Currency, vehicle.Status, vehicle.AvailableUnits, vehicle.IsAvailable, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, vehicle)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), vehicle.ID)
	})
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "brand_id", "model", "year", "price", "currency", "status", "available_units", "is_available", "created_on", "updated_on"}).
			AddRow(1, 1, "Corolla", 2022, "45.00", "USD", "available", 3, true, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		vehicle, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, vehicle)
		assert.Equal(t, "Corolla", vehicle.Model)
		assert.True(t, vehicle.Price.Equal(decimal.RequireFromString("45.00")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		vehicle, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, vehicle)
	})
}

func TestVehicleRepository_TryActivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("ConsumesUnit", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles").
			WithArgs(sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TryActivate(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("InventoryExhausted", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles").
			WithArgs(sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TryActivate(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	})
}

func TestVehicleRepository_ReleaseUnit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	// A sold or maintenance vehicle must not come back as available just
	// because a unit was handed back.
	mock.ExpectExec(`UPDATE vehicles SET (.+)is_available = CASE WHEN status IN \('rented', 'available'\) THEN TRUE ELSE is_available END`).
		WithArgs(sqlmock.AnyArg(), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.ReleaseUnit(ctx, 1)
	assert.NoError(t, err)
}

func TestVehicleRepository_ListTiers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	maxDays := int32(6)
	rows := sqlmock.NewRows([]string{"id", "vehicle_id", "min_days", "max_days", "price_per_day"}).
		AddRow(1, 1, 1, maxDays, "50.00").
		AddRow(2, 1, 7, nil, "30.00")

	mock.ExpectQuery("SELECT (.+) FROM price_tiers WHERE vehicle_id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	tiers, err := repo.ListTiers(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, tiers, 2)
	assert.Equal(t, int32(1), tiers[0].MinDays)
	assert.Nil(t, tiers[1].MaxDays)
}
