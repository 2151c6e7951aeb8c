package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/portfolio-backend/internal/services"
)

type claimsKeyType string

const adminClaimsKey claimsKeyType = "admin_claims"

type authErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AdminAuth rejects requests without a valid admin bearer token. Token expiry
// is reported distinctly so the dashboard can prompt a re-login.
func AdminAuth(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			tokenStr := strings.TrimSpace(authHeader[len("Bearer "):])

			claims, err := auth.RequireAdmin(tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrTokenExpired):
					writeAuthError(w, http.StatusUnauthorized, "Token expired. Please login again.")
				case errors.Is(err, services.ErrForbidden):
					writeAuthError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
				default:
					writeAuthError(w, http.StatusUnauthorized, "Invalid token.")
				}
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminClaims returns the decoded claims stored by AdminAuth, or nil.
func AdminClaims(ctx context.Context) *services.AdminClaims {
	if v := ctx.Value(adminClaimsKey); v != nil {
		if claims, ok := v.(*services.AdminClaims); ok {
			return claims
		}
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Success: false, Message: message})
}
