package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/auth"
	"github.com/tropicaldog17/folio/internal/services"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	users  services.UserService
	tokens *auth.TokenIssuer
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users services.UserService, tokens *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account.
// @Summary Register a user
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "User already exists"
// @Router /register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	_, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, apperr.ErrConflict) {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	}
	if errors.Is(err, apperr.ErrInvalid) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("register failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// HandleLogin verifies credentials and issues a bearer token.
// @Summary Log in
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, apperr.ErrUnauthorized) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		h.logger.Error("token signing failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
