package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UpdateStockRequestDTO struct {
	Stock *int `json:"stock"`
}

type AdjustStockRequestDTO struct {
	Delta int `json:"delta"`
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Inventory()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// UpdateStock handles PUT /admin/products/{id}/stock. Negative values are clamped to zero.
func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req UpdateStockRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Stock == nil {
		respondError(w, http.StatusBadRequest, "invalid_stock", "stock is required")
		return
	}

	product, err := h.svc.UpdateStock(chi.URLParam(r, "id"), *req.Stock)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.svc.AdjustStock(chi.URLParam(r, "id"), req.Delta)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
