package reference

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models/api"
)

// Generator produces the next formatted reference number
type Generator interface {
	Generate(ctx context.Context) (string, error)
}

// Handler handles reference number requests
type Handler struct {
	service Generator
	logger  *logger.Logger
}

// NewHandler creates a new reference handler
func NewHandler(service Generator, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Generate handles POST /api/reference
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	referenceNumber, err := h.service.Generate(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "reference_generation_failed").
			Msg("Failed to generate reference number")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate reference number"})
		return
	}

	writeJSON(w, http.StatusOK, api.ReferenceResponse{ReferenceNumber: referenceNumber})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
