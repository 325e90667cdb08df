package rest

import (
	"net/http"

	"wheelhouse-backend/internal/service"
)

type SupportHandler struct {
	supportSvc service.SupportService
}

func NewSupportHandler(supportSvc service.SupportService) *SupportHandler {
	return &SupportHandler{supportSvc: supportSvc}
}

type openTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req openTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ticket, err := h.supportSvc.OpenTicket(r.Context(), claims.UserID, req.Subject, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	ticket, err := h.supportSvc.GetTicket(r.Context(), claims.UserID, claims.IsStaff, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	tickets, err := h.supportSvc.ListTickets(r.Context(), claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tickets": tickets})
}

func (h *SupportHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	ticket, err := h.supportSvc.ResolveTicket(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}
