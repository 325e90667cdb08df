package rest

import (
	"net/http"

	"github.com/shopspring/decimal"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type reviewPayload struct {
	domain.VehicleReview
	AverageRating decimal.Decimal `json:"average_rating"`
}

func toReviewPayload(rv domain.VehicleReview) reviewPayload {
	return reviewPayload{VehicleReview: rv, AverageRating: rv.AverageRating()}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var review domain.VehicleReview
	if err := decodeJSON(r, &review); err != nil {
		writeError(w, err)
		return
	}
	review.VehicleID = vehicleID

	if err := h.reviewSvc.CreateReview(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewPayload(review))
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reviews, err := h.reviewSvc.ListReviews(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]reviewPayload, 0, len(reviews))
	for _, rv := range reviews {
		payload = append(payload, toReviewPayload(rv))
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": payload})
}
