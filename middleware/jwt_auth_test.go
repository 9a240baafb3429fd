package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/models"
	"suraksha/utils"
)

const testSecret = "test-jwt-secret"

func TestRequireAuth(t *testing.T) {
	m := NewAuthMiddleware(nil, testSecret)

	var seen *models.Principal
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	call := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid citizen token", func(t *testing.T) {
		token, _, err := utils.GenerateUserJWT(42, []byte(testSecret), 1)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		seen = nil
		rec := call("Bearer " + token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if seen == nil || seen.UserID != 42 || seen.Role != models.RoleUser {
			t.Errorf("unexpected principal: %+v", seen)
		}
	})

	t.Run("police token rejected on citizen endpoint", func(t *testing.T) {
		token, _, err := utils.GenerateOfficerJWT(3, 7, []byte(testSecret), 1)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if rec := call("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if rec := call(""); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if rec := call("Bearer not-a-jwt"); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := utils.GenerateUserJWT(42, []byte(testSecret), -1)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if rec := call("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		token, _, err := utils.GenerateUserJWT(42, []byte("some-other-secret"), 1)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if rec := call("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}
