package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sumAmounts(t *testing.T, total string, days int32) {
	t.Helper()
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	schedule, err := BuildSchedule(dec(total), start, days)
	assert.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, dec(total).Equal(sum), "total %s over %d days: sum %s", total, days, sum)
}

func TestBuildSchedule_ShortRental(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := BuildSchedule(dec("450.00"), start, 15)
	assert.NoError(t, err)
	assert.Len(t, schedule, 1)
	assert.True(t, dec("450.00").Equal(schedule[0].Amount))
	assert.Equal(t, start, schedule[0].DueDate)
	assert.Equal(t, int32(1), schedule[0].Seq)
}

func TestBuildSchedule_MultiMonth(t *testing.T) {
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	// 75 days: two full 30-day periods at 750/75*30 = 300.00 each, plus a
	// 15-day remainder of 150.00.
	schedule, err := BuildSchedule(dec("750.00"), start, 75)
	assert.NoError(t, err)
	assert.Len(t, schedule, 3)

	assert.True(t, dec("300.00").Equal(schedule[0].Amount))
	assert.Equal(t, start, schedule[0].DueDate)
	assert.True(t, dec("300.00").Equal(schedule[1].Amount))
	assert.Equal(t, start.AddDate(0, 1, 0), schedule[1].DueDate)
	assert.True(t, dec("150.00").Equal(schedule[2].Amount))
	assert.Equal(t, start.AddDate(0, 2, 0), schedule[2].DueDate)

	for i, inst := range schedule {
		assert.Equal(t, int32(i+1), inst.Seq)
	}
}

func TestBuildSchedule_ExactMultipleOfThirty(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	// 100/90*30 = 33.33 rounded; the last installment absorbs the cent.
	schedule, err := BuildSchedule(dec("100.00"), start, 90)
	assert.NoError(t, err)
	assert.Len(t, schedule, 3)
	assert.True(t, dec("33.33").Equal(schedule[0].Amount))
	assert.True(t, dec("33.33").Equal(schedule[1].Amount))
	assert.True(t, dec("33.34").Equal(schedule[2].Amount))
}

func TestBuildSchedule_SumInvariant(t *testing.T) {
	cases := []struct {
		total string
		days  int32
	}{
		{"450.00", 15},
		{"750.00", 75},
		{"100.00", 90},
		{"1234.56", 29},
		{"1234.56", 30},
		{"1234.56", 31},
		{"999.99", 365},
		{"0.01", 120},
		{"10000.00", 59},
	}

	for _, tc := range cases {
		sumAmounts(t, tc.total, tc.days)
	}
}

func TestBuildSchedule_TinyTotalNeverGoesNegative(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		total string
		days  int32
	}{
		{"0.05", 299},
		{"0.05", 300},
		{"0.01", 365},
		{"0.99", 61},
	}

	for _, tc := range cases {
		schedule, err := BuildSchedule(dec(tc.total), start, tc.days)
		assert.NoError(t, err)

		sum := decimal.Zero
		for _, inst := range schedule {
			assert.False(t, inst.Amount.IsNegative(),
				"total %s over %d days: seq %d amount %s", tc.total, tc.days, inst.Seq, inst.Amount)
			sum = sum.Add(inst.Amount)
		}
		assert.True(t, dec(tc.total).Equal(sum), "total %s over %d days: sum %s", tc.total, tc.days, sum)
	}
}

func TestBuildSchedule_InvalidDays(t *testing.T) {
	_, err := BuildSchedule(dec("100"), time.Now(), 0)
	assert.Error(t, err)
}
