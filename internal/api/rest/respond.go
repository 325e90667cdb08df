package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/logger"
	"wheelhouse-backend/internal/security"
	"wheelhouse-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// validation 400, auth 401, not found 404, state conflicts 409.
func writeError(w http.ResponseWriter, err error) {
	var valErr *domain.ValidationError
	var extErr *domain.InvalidExtensionError
	var transErr *domain.InvalidTransitionError

	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: valErr.Reason, Field: valErr.Field})
	case errors.As(err, &extErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: extErr.Reason})
	case errors.As(err, &transErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: transErr.Reason})
	case errors.Is(err, domain.ErrInsufficientInventory):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON payload")
	}
	return nil
}
