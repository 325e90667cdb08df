package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusCancelled
}

type Rental struct {
	ID         int32        `json:"id"`
	CustomerID *int32       `json:"customer_id,omitempty"`
	VehicleID  int32        `json:"vehicle_id"`
	UserID     int32        `json:"user_id"` // creating user, also the billed party
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	Status     RentalStatus `json:"status"`
	// TotalPrice is computed exactly once at creation when not supplied
	// by the caller; only Extend recomputes it afterwards.
	TotalPrice        decimal.Decimal `json:"total_price"`
	InspectionFormKey string          `json:"inspection_form_key,omitempty"`
	CreatedOn         time.Time       `json:"created_on"`
	UpdatedOn         time.Time       `json:"updated_on"`
}

// Installment is one scheduled partial payment obligation against a
// rental's total price. Seq is 1-based and unique per rental.
type Installment struct {
	ID       int32           `json:"id"`
	RentalID int32           `json:"rental_id"`
	UserID   int32           `json:"user_id"`
	Seq      int32           `json:"seq"`
	DueDate  time.Time       `json:"due_date"`
	Amount   decimal.Decimal `json:"amount"`
	IsPaid   bool            `json:"is_paid"`
}

type CustomerData struct {
	ID          int32     `json:"id"`
	FirstName   string    `json:"first_name"`
	MiddleName  string    `json:"middle_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	IDNumber    string    `json:"id_number"`
	Nationality string    `json:"nationality"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}
