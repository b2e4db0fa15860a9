package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kaushiksr22/advisor-voice-agent/internal/handoff"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// SecureDetailsHandler accepts contact details submitted over the secure link.
type SecureDetailsHandler struct {
	service *handoff.Service
	logger  *logging.Logger
}

// NewSecureDetailsHandler creates a secure-details handler.
func NewSecureDetailsHandler(service *handoff.Service, logger *logging.Logger) *SecureDetailsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SecureDetailsHandler{service: service, logger: logger}
}

type secureDetailsResponse struct {
	OK      bool             `json:"ok"`
	Actions *handoff.Actions `json:"mcp"`
}

// Handle serves POST /api/secure-details.
func (h *SecureDetailsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handoff.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	actions, err := h.service.Enrich(r.Context(), req)
	if err != nil {
		var unknown *handoff.UnknownCodeError
		switch {
		case errors.Is(err, handoff.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "booking_code and email are required",
			})
		case errors.As(err, &unknown):
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("Unknown booking_code: %s. Please use the code provided by the agent.", unknown.Code),
			})
		default:
			h.logger.Error("secure details failed", "error", err, "code", req.BookingCode)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, secureDetailsResponse{OK: true, Actions: actions})
}
