package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing name", `{"email":"a@b.com","password":"longenough"}`},
		{"missing email", `{"name":"Asha","password":"longenough"}`},
		{"email without at sign", `{"name":"Asha","email":"not-an-email","password":"longenough"}`},
		{"short password", `{"name":"Asha","email":"a@b.com","password":"short"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
