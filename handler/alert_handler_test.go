package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"suraksha/middleware"
	"suraksha/models"
)

func requestWithPrincipal(method, target, body string, principal *models.Principal) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if principal != nil {
		ctx := context.WithValue(req.Context(), middleware.PrincipalKey, principal)
		req = req.WithContext(ctx)
	}
	return req
}

func TestTriggerSOSValidation(t *testing.T) {
	h := NewAlertHandler(nil)
	citizen := &models.Principal{Role: models.RoleUser, UserID: 1}

	cases := []struct {
		name      string
		body      string
		principal *models.Principal
		want      int
	}{
		{"no principal", `{"lat":28.6,"lng":77.2}`, nil, http.StatusUnauthorized},
		{"malformed json", `{"lat":`, citizen, http.StatusBadRequest},
		{"missing lat", `{"lng":77.2}`, citizen, http.StatusBadRequest},
		{"missing lng", `{"lat":28.6}`, citizen, http.StatusBadRequest},
		{"missing both", `{}`, citizen, http.StatusBadRequest},
		{"latitude out of range", `{"lat":91.0,"lng":77.2}`, citizen, http.StatusBadRequest},
		{"longitude out of range", `{"lat":28.6,"lng":181.0}`, citizen, http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := requestWithPrincipal(http.MethodPost, "/api/v1/sos/alert", c.body, c.principal)
			rec := httptest.NewRecorder()
			h.TriggerSOS(rec, req)
			if rec.Code != c.want {
				t.Errorf("expected %d, got %d: %s", c.want, rec.Code, rec.Body.String())
			}
		})
	}
}
