package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type UpholsteryMaterial struct {
	ID    int32           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type UpholsteryType struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"base_price"`
	EstimatedHours int32           `json:"estimated_hours"`
	Available      bool            `json:"available"`
}

type UpholsteryBooking struct {
	ID          int32         `json:"id"`
	UserID      int32         `json:"user_id"`
	MaterialID  int32         `json:"material_id"`
	TypeID      int32         `json:"type_id"`
	VehicleInfo string        `json:"vehicle_info"`
	Scheduled   time.Time     `json:"scheduled"`
	Status      BookingStatus `json:"status"`
	// QuotedPrice is snapshotted from type base price + material price at
	// booking time; later catalog edits do not change it.
	QuotedPrice decimal.Decimal `json:"quoted_price"`
	CreatedOn   time.Time       `json:"created_on"`
	UpdatedOn   time.Time       `json:"updated_on"`
}
