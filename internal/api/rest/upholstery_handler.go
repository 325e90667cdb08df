package rest

import (
	"context"
	"net/http"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

type UpholsteryHandler struct {
	upholsterySvc service.UpholsteryService
}

func NewUpholsteryHandler(upholsterySvc service.UpholsteryService) *UpholsteryHandler {
	return &UpholsteryHandler{upholsterySvc: upholsterySvc}
}

func (h *UpholsteryHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var material domain.UpholsteryMaterial
	if err := decodeJSON(r, &material); err != nil {
		writeError(w, err)
		return
	}
	if err := h.upholsterySvc.AddMaterial(r.Context(), &material); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func (h *UpholsteryHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.upholsterySvc.ListMaterials(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"materials": materials})
}

func (h *UpholsteryHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var svcType domain.UpholsteryType
	if err := decodeJSON(r, &svcType); err != nil {
		writeError(w, err)
		return
	}
	if err := h.upholsterySvc.AddType(r.Context(), &svcType); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svcType)
}

func (h *UpholsteryHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.upholsterySvc.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": types})
}

type createBookingRequest struct {
	MaterialID  int32  `json:"material_id"`
	TypeID      int32  `json:"type_id"`
	VehicleInfo string `json:"vehicle_info"`
	Scheduled   string `json:"scheduled"`
}

func (h *UpholsteryHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	scheduled, err := parseDate("scheduled", req.Scheduled)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.upholsterySvc.CreateBooking(r.Context(), claims.UserID, req.MaterialID, req.TypeID, req.VehicleInfo, scheduled)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *UpholsteryHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.upholsterySvc.GetBooking(r.Context(), claims.UserID, claims.IsStaff, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *UpholsteryHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	bookings, err := h.upholsterySvc.ListBookings(r.Context(), claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *UpholsteryHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.upholsterySvc.ConfirmBooking)
}

func (h *UpholsteryHandler) StartBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.upholsterySvc.StartBooking)
}

func (h *UpholsteryHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.upholsterySvc.CompleteBooking)
}

func (h *UpholsteryHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := h.upholsterySvc.CancelBooking(r.Context(), claims.UserID, claims.IsStaff, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *UpholsteryHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, bookingID int32) (*domain.UpholsteryBooking, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	booking, err := op(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
