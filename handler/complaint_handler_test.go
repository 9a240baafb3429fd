package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/models"
)

func TestCreateComplaintValidation(t *testing.T) {
	h := NewComplaintHandler(nil)
	citizen := &models.Principal{Role: models.RoleUser, UserID: 1}

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"missing station", `{"title":"Stalking","description":"details","lat":28.6,"lng":77.2}`},
		{"missing title", `{"stationId":3,"description":"details","lat":28.6,"lng":77.2}`},
		{"missing description", `{"stationId":3,"title":"Stalking","lat":28.6,"lng":77.2}`},
		{"missing coordinates", `{"stationId":3,"title":"Stalking","description":"details"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := requestWithPrincipal(http.MethodPost, "/api/v1/complaints", c.body, citizen)
			rec := httptest.NewRecorder()
			h.CreateComplaint(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}

	t.Run("no principal", func(t *testing.T) {
		req := requestWithPrincipal(http.MethodPost, "/api/v1/complaints",
			`{"stationId":3,"title":"Stalking","description":"details","lat":28.6,"lng":77.2}`, nil)
		rec := httptest.NewRecorder()
		h.CreateComplaint(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}
