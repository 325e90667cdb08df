package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"wheelhouse-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i32(v int32) *int32 { return &v }

func TestTotalDays(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int32
	}{
		{"exactly one day", base.AddDate(0, 0, 1), 1},
		{"exactly ten days", base.AddDate(0, 0, 10), 10},
		{"partial day rounds up", base.AddDate(0, 0, 3).Add(2 * time.Hour), 4},
		{"under a day counts as one", base.Add(5 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := TotalDays(base, tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}

	t.Run("end before start", func(t *testing.T) {
		_, err := TotalDays(base, base.AddDate(0, 0, -1))
		assert.Error(t, err)
	})

	t.Run("end equals start", func(t *testing.T) {
		_, err := TotalDays(base, base)
		assert.Error(t, err)
	})
}

func TestResolvePrice_Tiered(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, Price: dec("40")}
	tiers := []domain.PriceTier{
		{VehicleID: 1, MinDays: 1, MaxDays: i32(6), PricePerDay: dec("50")},
		{VehicleID: 1, MinDays: 7, MaxDays: nil, PricePerDay: dec("30")},
	}

	t.Run("5 days hits first tier", func(t *testing.T) {
		total, err := ResolvePrice(vehicle, tiers, 5)
		assert.NoError(t, err)
		assert.True(t, dec("250").Equal(total), "got %s", total)
	})

	t.Run("10 days hits unbounded tier", func(t *testing.T) {
		total, err := ResolvePrice(vehicle, tiers, 10)
		assert.NoError(t, err)
		assert.True(t, dec("300").Equal(total), "got %s", total)
	})

	t.Run("overlapping tiers pick smallest min_days", func(t *testing.T) {
		overlapping := []domain.PriceTier{
			{VehicleID: 1, MinDays: 3, MaxDays: nil, PricePerDay: dec("20")},
			{VehicleID: 1, MinDays: 1, MaxDays: nil, PricePerDay: dec("25")},
		}
		total, err := ResolvePrice(vehicle, overlapping, 5)
		assert.NoError(t, err)
		assert.True(t, dec("125").Equal(total), "got %s", total)
	})
}

func TestResolvePrice_FlatFallback(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, Price: dec("40")}

	t.Run("no tiers at all", func(t *testing.T) {
		total, err := ResolvePrice(vehicle, nil, 10)
		assert.NoError(t, err)
		assert.True(t, dec("400").Equal(total), "got %s", total)
	})

	t.Run("tiers exist but none match", func(t *testing.T) {
		tiers := []domain.PriceTier{
			{VehicleID: 1, MinDays: 30, MaxDays: nil, PricePerDay: dec("25")},
		}
		total, err := ResolvePrice(vehicle, tiers, 10)
		assert.NoError(t, err)
		assert.True(t, dec("400").Equal(total), "got %s", total)
	})

	t.Run("invalid day count", func(t *testing.T) {
		_, err := ResolvePrice(vehicle, nil, 0)
		assert.Error(t, err)
	})
}
