// internal/api/handler/login.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bloglist/internal/service"
	"bloglist/internal/util"
)

// LoginHandler handles HTTP requests for authentication.
type LoginHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc service.AuthService, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		service: svc,
		logger:  logger,
	}
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token together with display identity.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login handles the login request.
// POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrValidation)
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
