package http

import (
	"net/http"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCheckout(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.BeginCheckout(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var form domain.ShippingForm
	if !decodeJSON(w, r, &form) {
		return
	}

	view, err := h.svc.SubmitShipping(r.Context(), sessionIDFromContext(r.Context()), form)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) BackToShipping(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.BackToShipping(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// SubmitPayment answers with the order confirmation. Card data is never echoed
// beyond its masked form.
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var form domain.PaymentForm
	if !decodeJSON(w, r, &form) {
		return
	}

	confirmation, err := h.svc.SubmitPayment(r.Context(), sessionIDFromContext(r.Context()), form)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) AbandonCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.AbandonCheckout(r.Context(), sessionIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
