package rest

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID         *int32 `json:"customer_id"`
	VehicleID          int32  `json:"vehicle_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	TotalPrice         string `json:"total_price"`
	InspectionFormName string `json:"inspection_form_name"`
}

type rentalResponse struct {
	Rental       *domain.Rental       `json:"rental"`
	Installments []domain.Installment `json:"installments,omitempty"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	input := service.CreateRentalInput{
		UserID:     claims.UserID,
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		StartDate:  start,
		EndDate:    end,
		Staff:      claims.IsStaff,
	}
	if req.TotalPrice != "" {
		price, err := decimal.NewFromString(req.TotalPrice)
		if err != nil || price.IsNegative() {
			writeError(w, domain.NewValidationError("total_price", "must be a non-negative decimal"))
			return
		}
		input.TotalPrice = &price
	}
	if req.InspectionFormName != "" {
		// Attachment keys are uuid-named so uploads cannot collide.
		input.InspectionFormKey = "inspections/" + uuid.NewString() + filepath.Ext(req.InspectionFormName)
	}

	rental, installments, err := h.rentalSvc.CreateRental(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rentalResponse{Rental: rental, Installments: installments})
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), claims.UserID, claims.IsStaff, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: rentals, Total: total, Page: page})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), claims.UserID, claims.IsStaff, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalResponse{Rental: rental})
}

func (h *RentalHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.Confirm)
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.Start)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.Complete)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	h.transition(w, r, func(ctx context.Context, rentalID int32) (*domain.Rental, error) {
		return h.rentalSvc.Cancel(ctx, claims.UserID, claims.IsStaff, rentalID)
	})
}

func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, rentalID int32) (*domain.Rental, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := op(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalResponse{Rental: rental})
}

type extendRequest struct {
	EndDate string `json:"end_date"`
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req extendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	newEnd, err := parseDate("end_date", req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, appended, err := h.rentalSvc.Extend(r.Context(), id, newEnd)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := rentalResponse{Rental: rental}
	if appended != nil {
		resp.Installments = []domain.Installment{*appended}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RentalHandler) ListInstallments(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	installments, err := h.rentalSvc.ListInstallments(r.Context(), claims.UserID, claims.IsStaff, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"installments": installments})
}

func (h *RentalHandler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.rentalSvc.PayInstallment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "paid"})
}
