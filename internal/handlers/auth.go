package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/devfolio/portfolio-backend/internal/services"
)

var authService *services.AuthService

// InitAuthService wires the auth handlers to a constructed AuthService.
func InitAuthService(auth *services.AuthService) {
	authService = auth
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response after admin login
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// VerifyResponse represents the response for token verification
type VerifyResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Admin   *services.AdminClaims `json:"admin,omitempty"`
}

// Login handles admin login and returns a signed token on success.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide username and password")
		return
	}

	token, err := authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Deliberately generic so the response does not leak which field was wrong
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondServerError(w, "Login", err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}

// VerifyToken reports the decoded claims of the presented token. It runs
// behind AdminAuth, so reaching it means the token already validated.
func VerifyToken(w http.ResponseWriter, r *http.Request) {
	claims := middleware.AdminClaims(r.Context())
	respondJSON(w, http.StatusOK, VerifyResponse{
		Success: true,
		Message: "Token is valid",
		Admin:   claims,
	})
}
