package jobs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models"
	"github.com/careerdesk/core/pkg/models/api"
	"github.com/careerdesk/core/pkg/repository"
)

// Handler handles job posting requests
type Handler struct {
	repo   repository.JobRepository
	logger *logger.Logger
}

// NewHandler creates a new jobs handler
func NewHandler(repo repository.JobRepository, log *logger.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: log,
	}
}

// Collection handles /api/jobs
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles /api/jobs/{id}
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	idStr := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/jobs/"), "/")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid job ID"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.repo.Create(r.Context(), &job)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "job_create_failed").
			Msg("Failed to create job")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create job"})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "job_list_failed").
			Msg("Failed to list jobs")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch jobs"})
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	job, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Job not found"})
			return
		}
		h.logger.Error().
			Err(err).
			Str("action", "job_get_failed").
			Str("job_id", id.Hex()).
			Msg("Failed to get job")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch job"})
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	var update models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	job, err := h.repo.Update(r.Context(), id, &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Job not found"})
			return
		}
		h.logger.Error().
			Err(err).
			Str("action", "job_update_failed").
			Str("job_id", id.Hex()).
			Msg("Failed to update job")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update job"})
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Job not found"})
			return
		}
		h.logger.Error().
			Err(err).
			Str("action", "job_delete_failed").
			Str("job_id", id.Hex()).
			Msg("Failed to delete job")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete job"})
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Job deleted successfully"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
