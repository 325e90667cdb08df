package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusRented    VehicleStatus = "rented"
	VehicleStatusSold      VehicleStatus = "sold"
)

type Brand struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Primary     bool   `json:"primary"`
}

type Vehicle struct {
	ID             int32           `json:"id"`
	BrandID        int32           `json:"brand_id"`
	Brand          *Brand          `json:"brand,omitempty"` // populated when fetching vehicle details
	Model          string          `json:"model"`
	Year           int32           `json:"year"`
	Price          decimal.Decimal `json:"price"` // flat rate per day
	Currency       string          `json:"currency"`
	Status         VehicleStatus   `json:"status"`
	AvailableUnits int32           `json:"available_units"`
	IsAvailable    bool            `json:"is_available"`
	CreatedOn      time.Time       `json:"created_on"`
	UpdatedOn      time.Time       `json:"updated_on"`
}

// PriceTier is a per-day rate for rentals whose duration falls inside
// the [MinDays, MaxDays] band. MaxDays nil means unbounded.
type PriceTier struct {
	ID          int32           `json:"id"`
	VehicleID   int32           `json:"vehicle_id"`
	MinDays     int32           `json:"min_days"`
	MaxDays     *int32          `json:"max_days,omitempty"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
}
