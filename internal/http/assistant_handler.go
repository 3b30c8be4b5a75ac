package http

import (
	"net/http"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
)

type AskRequestDTO struct {
	Question string `json:"question"`
}

type GreetingResponseDTO struct {
	Greeting string `json:"greeting"`
}

func (h *Handler) Greeting(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, GreetingResponseDTO{Greeting: assistant.Greeting})
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.svc.Ask(r.Context(), req.Question)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reply)
}
