package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"suraksha/models"
	"suraksha/service"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// PrincipalKey is the context key under which the authenticated principal
// is stored.
const PrincipalKey contextKey = "principal"

// PrincipalFromContext retrieves the authenticated principal set by one of
// the auth middlewares.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*models.Principal)
	return principal, ok
}

// AuthMiddleware validates citizen JWT tokens
type AuthMiddleware struct {
	userService *service.UserService
	jwtSecret   []byte
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(userService *service.UserService, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// RequireAuth validates a citizen JWT and sets the principal in context.
// Police tokens are rejected; citizen endpoints accept citizen tokens only.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := parseBearerToken(w, r, m.jwtSecret)
		if !ok {
			return
		}

		if at, _ := claims["actor_type"].(string); at == "police" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Police token not accepted for this endpoint")
			return
		}

		principal, ok := m.principalFromClaims(w, claims)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFromClaims builds a citizen principal from validated claims,
// writing the error response itself on failure.
func (m *AuthMiddleware) principalFromClaims(w http.ResponseWriter, claims jwt.MapClaims) (*models.Principal, bool) {
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token: user_id not found")
		return nil, false
	}
	userID := int64(userIDFloat)

	role := models.RoleUser
	if m.userService != nil {
		accountRole, err := m.userService.GetUserRole(userID)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "User not found")
			return nil, false
		}
		role = accountRole
	}

	return &models.Principal{Role: role, UserID: userID}, true
}

// parseBearerToken extracts and validates the JWT from the Authorization
// header, writing the error response itself on failure.
func parseBearerToken(w http.ResponseWriter, r *http.Request, secret []byte) (jwt.MapClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization format. Expected: Bearer <token>")
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
		return nil, false
	}
	if !token.Valid {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token claims")
		return nil, false
	}
	return claims, true
}

// Helper function for error responses
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	body := fmt.Sprintf(`{"error":"%s","message":"%s","code":%d}`, errorType, message, statusCode)
	w.Write([]byte(body))
}
