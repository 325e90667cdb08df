package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
)

// TotalDays converts a rental window into billable days: the calendar-day
// difference, plus one extra day when a nonzero time-of-day remainder is
// left over. The end must be strictly after the start; the result is
// always >= 1.
func TotalDays(start, end time.Time) (int32, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end date must be after start date")
	}

	d := end.Sub(start)
	days := int32(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days, nil
}

// ResolvePrice computes the total price for renting a vehicle over
// totalDays. Tiers are filtered to those whose band contains totalDays;
// the one with the smallest MinDays wins (first match ascending, not
// best fit). Without a matching tier the vehicle's flat daily price
// applies. Pure function, no side effects.
func ResolvePrice(vehicle *domain.Vehicle, tiers []domain.PriceTier, totalDays int32) (decimal.Decimal, error) {
	if totalDays < 1 {
		return decimal.Zero, fmt.Errorf("total days must be >= 1, got %d", totalDays)
	}

	days := decimal.NewFromInt32(totalDays)

	if tier := matchTier(tiers, totalDays); tier != nil {
		return tier.PricePerDay.Mul(days), nil
	}
	return vehicle.Price.Mul(days), nil
}

func matchTier(tiers []domain.PriceTier, totalDays int32) *domain.PriceTier {
	candidates := make([]domain.PriceTier, 0, len(tiers))
	for _, t := range tiers {
		if t.MinDays > totalDays {
			continue
		}
		if t.MaxDays != nil && *t.MaxDays < totalDays {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MinDays < candidates[j].MinDays
	})
	return &candidates[0]
}
