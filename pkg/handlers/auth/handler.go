package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models/api"
	"github.com/careerdesk/core/pkg/services"
)

// Authenticator registers accounts and checks credentials
type Authenticator interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// Handler handles registration and login requests
type Handler struct {
	service Authenticator
	logger  *logger.Logger
}

// NewHandler creates a new auth handler
func NewHandler(service Authenticator, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		// Duplicate usernames surface the same way as store failures
		h.logger.Error().
			Err(err).
			Str("action", "registration_failed").
			Str("username", req.Username).
			Msg("Failed to register user")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register user"})
		return
	}

	writeJSON(w, http.StatusCreated, api.MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /api/login. Unknown usernames, wrong passwords, and
// malformed bodies all answer 400 with the same flat message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	username, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.logger.Warn().
				Err(err).
				Str("action", "login_failed").
				Str("username", req.Username).
				Msg("Login attempt failed")
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		h.logger.Error().
			Err(err).
			Str("action", "login_store_failed").
			Str("username", req.Username).
			Msg("Failed to check credentials")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to log in"})
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{
		Message: "Login successful",
		User:    api.UserInfo{Username: username},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
