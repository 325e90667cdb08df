package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
)

const daysPerBillingMonth = 30

var thirty = decimal.NewFromInt(daysPerBillingMonth)

// BuildSchedule decomposes a rental's total price into due-dated
// installments on a 30-day cadence:
//
//   - under 30 days: a single installment for the full amount, due on
//     the start date;
//   - otherwise: one installment per full 30-day period at the prorated
//     30-day equivalent (total/totalDays*30, rounded down to cents), due
//     at start + i calendar months, with the final installment carrying
//     the exact remainder so the amounts always sum to total.
//
// Rounding the monthly amount down keeps monthly*months <= total, so the
// trailing remainder is never negative even for cent-scale totals spread
// over many months. The sum invariant holds for every input: when
// totalDays is an exact multiple of 30 the last monthly installment
// absorbs the rounding that a trailing remainder installment would
// otherwise have absorbed.
func BuildSchedule(total decimal.Decimal, start time.Time, totalDays int32) ([]domain.Installment, error) {
	if totalDays < 1 {
		return nil, fmt.Errorf("total days must be >= 1, got %d", totalDays)
	}

	if totalDays < daysPerBillingMonth {
		return []domain.Installment{{Seq: 1, DueDate: start, Amount: total}}, nil
	}

	fullMonths := totalDays / daysPerBillingMonth
	remainingDays := totalDays % daysPerBillingMonth
	monthly := total.Div(decimal.NewFromInt32(totalDays)).Mul(thirty).RoundFloor(2)

	var out []domain.Installment
	if remainingDays > 0 {
		for i := int32(0); i < fullMonths; i++ {
			out = append(out, domain.Installment{
				Seq:     i + 1,
				DueDate: start.AddDate(0, int(i), 0),
				Amount:  monthly,
			})
		}
		remainder := total.Sub(monthly.Mul(decimal.NewFromInt32(fullMonths)))
		out = append(out, domain.Installment{
			Seq:     fullMonths + 1,
			DueDate: start.AddDate(0, int(fullMonths), 0),
			Amount:  remainder,
		})
		return out, nil
	}

	for i := int32(0); i < fullMonths-1; i++ {
		out = append(out, domain.Installment{
			Seq:     i + 1,
			DueDate: start.AddDate(0, int(i), 0),
			Amount:  monthly,
		})
	}
	last := total.Sub(monthly.Mul(decimal.NewFromInt32(fullMonths - 1)))
	out = append(out, domain.Installment{
		Seq:     fullMonths,
		DueDate: start.AddDate(0, int(fullMonths-1), 0),
		Amount:  last,
	})
	return out, nil
}
