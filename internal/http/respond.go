package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
	"github.com/Chahethsen12/MobiTech-Elite/internal/auth"
	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/Chahethsen12/MobiTech-Elite/internal/checkout"
	"github.com/Chahethsen12/MobiTech-Elite/internal/service"
	"github.com/Chahethsen12/MobiTech-Elite/internal/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   vErr.Error(),
			Code:    "validation_failed",
			Details: strings.Join(vErr.Fields, ","),
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, checkout.ErrNotStarted):
		respondError(w, http.StatusConflict, "checkout_not_started", err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, catalog.ErrInvalidSort), errors.Is(err, catalog.ErrInvalidCategory):
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, auth.ErrMissingCredentials):
		respondError(w, http.StatusBadRequest, "missing_credentials", err.Error())
	case errors.Is(err, auth.ErrNotSignedIn):
		respondError(w, http.StatusUnauthorized, "not_signed_in", err.Error())
	case errors.Is(err, auth.ErrInvalidAdminCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, assistant.ErrEmptyQuestion):
		respondError(w, http.StatusBadRequest, "empty_question", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "timeout", "request timeout")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unhandled service error")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
