package middleware

import (
	"context"
	"net/http"
	"suraksha/models"
	"suraksha/service"

	"github.com/golang-jwt/jwt/v5"
)

// PoliceAuthMiddleware validates officer JWT tokens
type PoliceAuthMiddleware struct {
	stationService *service.StationService
	jwtSecret      []byte
}

// NewPoliceAuthMiddleware creates a new police auth middleware
func NewPoliceAuthMiddleware(stationService *service.StationService, jwtSecret string) *PoliceAuthMiddleware {
	return &PoliceAuthMiddleware{
		stationService: stationService,
		jwtSecret:      []byte(jwtSecret),
	}
}

// RequirePoliceAuth validates an officer JWT and sets the principal in
// context. Citizen tokens are rejected.
func (m *PoliceAuthMiddleware) RequirePoliceAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := parseBearerToken(w, r, m.jwtSecret)
		if !ok {
			return
		}

		actorType, _ := claims["actor_type"].(string)
		if actorType != "police" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Police token required for this endpoint")
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

// principalFromClaims builds a police principal from validated claims,
// writing the error response itself on failure.
func (m *PoliceAuthMiddleware) principalFromClaims(w http.ResponseWriter, claims jwt.MapClaims) (*models.Principal, bool) {
	officerIDFloat, ok := claims["officer_id"].(float64)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token: officer_id not found")
		return nil, false
	}
	stationIDFloat, ok := claims["station_id"].(float64)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid token: station_id not found")
		return nil, false
	}

	officerID := int64(officerIDFloat)
	stationID := int64(stationIDFloat)

	if m.stationService != nil {
		officer, err := m.stationService.GetOfficer(officerID)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Officer not found")
			return nil, false
		}
		// Station posting may have changed since the token was issued.
		stationID = officer.StationID
	}

	return &models.Principal{
		Role:      models.RolePolice,
		OfficerID: officerID,
		StationID: stationID,
	}, true
}
