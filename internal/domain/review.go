package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleReview is a customer's star rating of a vehicle across six
// aspects, each on a 1 to 5 scale.
type VehicleReview struct {
	ID                int32     `json:"id"`
	VehicleID         int32     `json:"vehicle_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Comment           string    `json:"comment"`
	ComfortRating     int32     `json:"comfort_rating"`
	InteriorRating    int32     `json:"interior_rating"`
	ExteriorRating    int32     `json:"exterior_rating"`
	PriceRating       int32     `json:"price_rating"`
	PerformanceRating int32     `json:"performance_rating"`
	ReliabilityRating int32     `json:"reliability_rating"`
	CreatedOn         time.Time `json:"created_on"`
}

// AverageRating is the mean of the six aspect ratings, rounded to two
// places.
func (r *VehicleReview) AverageRating() decimal.Decimal {
	sum := r.ComfortRating + r.InteriorRating + r.ExteriorRating +
		r.PriceRating + r.PerformanceRating + r.ReliabilityRating
	return decimal.NewFromInt32(sum).Div(decimal.NewFromInt(6)).Round(2)
}

