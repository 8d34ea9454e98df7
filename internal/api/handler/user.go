// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bloglist/internal/service"
	"bloglist/internal/util"
)

// UserHandler handles HTTP requests for user resources.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterResponse is the outbound projection of a freshly created user.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Register handles the user registration request.
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrValidation)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.Name,
	})
}

// List handles the user listing request.
// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, users)
}
