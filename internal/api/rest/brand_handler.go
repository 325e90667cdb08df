package rest

import (
	"net/http"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

type BrandHandler struct {
	brandSvc service.BrandService
}

func NewBrandHandler(brandSvc service.BrandService) *BrandHandler {
	return &BrandHandler{brandSvc: brandSvc}
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var brand domain.Brand
	if err := decodeJSON(r, &brand); err != nil {
		writeError(w, err)
		return
	}
	if err := h.brandSvc.CreateBrand(r.Context(), &brand); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	brand, err := h.brandSvc.GetBrand(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandSvc.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"brands": brands})
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var brand domain.Brand
	if err := decodeJSON(r, &brand); err != nil {
		writeError(w, err)
		return
	}
	brand.ID = id
	if err := h.brandSvc.UpdateBrand(r.Context(), &brand); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.brandSvc.DeleteBrand(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
