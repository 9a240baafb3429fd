package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"
	"suraksha/models"
)

// CombinedAuthMiddleware accepts more than one credential kind on a single
// endpoint and sets whichever principal the token resolves to.
type CombinedAuthMiddleware struct {
	auth   *AuthMiddleware
	police *PoliceAuthMiddleware
}

// NewCombinedAuthMiddleware creates a new combined auth middleware
func NewCombinedAuthMiddleware(auth *AuthMiddleware, police *PoliceAuthMiddleware) *CombinedAuthMiddleware {
	return &CombinedAuthMiddleware{auth: auth, police: police}
}

// RequireStaffAuth accepts the static admin token or an officer JWT. Used
// on dispatch and triage endpoints operated by control-room staff.
func (m *CombinedAuthMiddleware) RequireStaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := adminPrincipal(r); ok {
			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		m.police.RequirePoliceAuth(next).ServeHTTP(w, r)
	})
}

// RequireAnyAuth accepts the admin token, an officer JWT or a citizen JWT.
// The service layer decides what the resolved principal may see.
func (m *CombinedAuthMiddleware) RequireAnyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := adminPrincipal(r); ok {
			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		claims, ok := parseBearerToken(w, r, m.auth.jwtSecret)
		if !ok {
			return
		}

		var principal *models.Principal
		if at, _ := claims["actor_type"].(string); at == "police" {
			principal, ok = m.police.principalFromClaims(w, claims)
		} else {
			principal, ok = m.auth.principalFromClaims(w, claims)
		}
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminPrincipal matches the Authorization header against ADMIN_TOKEN
func adminPrincipal(r *http.Request) (*models.Principal, bool) {
	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		return nil, false
	}
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] != adminToken {
		return nil, false
	}
	return &models.Principal{Role: models.RoleAdmin}, true
}
