package rest

import (
	"net/http"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicleSvc.AddVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, tiers, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vehicle": vehicle, "tiers": tiers})
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	vehicles, total, err := h.vehicleSvc.ListVehicles(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: vehicles, Total: total, Page: page})
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	vehicle.ID = id
	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) CreateTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var tier domain.PriceTier
	if err := decodeJSON(r, &tier); err != nil {
		writeError(w, err)
		return
	}
	tier.VehicleID = id
	if err := h.vehicleSvc.AddTier(r.Context(), &tier); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tier)
}

func (h *VehicleHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tiers, err := h.vehicleSvc.ListTiers(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tiers": tiers})
}

func (h *VehicleHandler) DeleteTier(w http.ResponseWriter, r *http.Request) {
	tierID, err := pathID(r, "tierID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicleSvc.DeleteTier(r.Context(), tierID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Quote prices a prospective rental from query parameters without
// touching any state.
func (h *VehicleHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate("start_date", r.URL.Query().Get("start_date"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate("end_date", r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, err)
		return
	}

	days, total, err := h.vehicleSvc.Quote(r.Context(), id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total_days": days, "total_price": total})
}
