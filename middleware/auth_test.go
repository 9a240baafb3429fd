package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/models"
)

func TestPrincipalFromContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := &models.Principal{Role: models.RoleUser, UserID: 42}
		ctx := context.WithValue(context.Background(), PrincipalKey, want)

		got, ok := PrincipalFromContext(ctx)
		if !ok {
			t.Fatal("expected principal in context")
		}
		if got.Role != models.RoleUser || got.UserID != 42 {
			t.Errorf("unexpected principal: %+v", got)
		}
	})

	t.Run("empty context", func(t *testing.T) {
		if _, ok := PrincipalFromContext(context.Background()); ok {
			t.Error("expected no principal in empty context")
		}
	})
}

func TestRequireAdminAuth(t *testing.T) {
	var seen *models.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdminAuth(next)

	call := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/stations", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin access not configured", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "")
		if rec := call("Bearer anything"); rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret-admin-token")
		if rec := call(""); rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret-admin-token")
		if rec := call("Bearer wrong"); rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret-admin-token")
		if rec := call("secret-admin-token"); rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("valid token sets admin principal", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret-admin-token")
		seen = nil
		rec := call("Bearer secret-admin-token")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if seen == nil || seen.Role != models.RoleAdmin {
			t.Errorf("expected admin principal, got %+v", seen)
		}
	})
}
