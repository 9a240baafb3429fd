package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"
	"suraksha/models"
)

// RequireAdminAuth validates the env-based static token (ADMIN_TOKEN) only.
// Fully isolated from citizen/police auth. Missing or mismatch yields 403.
func RequireAdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminToken := os.Getenv("ADMIN_TOKEN")
		if adminToken == "" {
			respondWithError(w, http.StatusForbidden, "Forbidden", "Admin access not configured")
			return
		}
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusForbidden, "Forbidden", "Authorization header required")
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusForbidden, "Forbidden", "Invalid authorization format")
			return
		}
		if parts[1] != adminToken {
			respondWithError(w, http.StatusForbidden, "Forbidden", "Invalid admin token")
			return
		}

		principal := &models.Principal{Role: models.RoleAdmin}
		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
