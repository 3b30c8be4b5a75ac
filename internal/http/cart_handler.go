package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CreateSessionResponseDTO struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.CreateSession(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set(SessionHeader, id)
	respondJSON(w, http.StatusCreated, CreateSessionResponseDTO{SessionID: id})
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EndSession(r.Context(), sessionIDFromContext(r.Context())); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCart(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	view, err := h.svc.AddToCart(r.Context(), sessionIDFromContext(r.Context()), req.ProductID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// UpdateQuantity handles PATCH /cart/items/{product_id}. Unknown products are a no-op.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateCartQuantity(r.Context(), sessionIDFromContext(r.Context()), chi.URLParam(r, "product_id"), req.Delta)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.RemoveFromCart(r.Context(), sessionIDFromContext(r.Context()), chi.URLParam(r, "product_id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
