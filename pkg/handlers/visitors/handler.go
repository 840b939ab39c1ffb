package visitors

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models/api"
)

// Counter returns the current visitor tally, applying the gated increment
type Counter interface {
	CurrentCount(ctx context.Context) (int64, error)
}

// Handler handles visitor counter requests
type Handler struct {
	service Counter
	logger  *logger.Logger
}

// NewHandler creates a new visitors handler
func NewHandler(service Counter, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Count handles GET /api/visitorCount
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := h.service.CurrentCount(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "visitor_count_failed").
			Msg("Failed to read visitor count")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch visitor count"})
		return
	}

	writeJSON(w, http.StatusOK, api.VisitorCountResponse{VisitorCount: count})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
