package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"suraksha/models"
)

func TestRespondWithServiceError(t *testing.T) {
	cases := []struct {
		err  string
		want int
	}{
		{"alert not found", http.StatusNotFound},
		{"station not found", http.StatusNotFound},
		{"officer not found", http.StatusNotFound},
		{"complaint not found", http.StatusNotFound},
		{"thread not found", http.StatusNotFound},
		{"trip not found", http.StatusNotFound},
		{"user not found", http.StatusNotFound},
		{"guardian not found", http.StatusNotFound},
		{"failed to load alert: table alerts not found", http.StatusInternalServerError},
		{"forbidden", http.StatusForbidden},
		{"invalid credentials", http.StatusUnauthorized},
		{"station has assigned officers", http.StatusConflict},
		{"guardian limit reached", http.StatusBadRequest},
		{"invalid priority", http.StatusBadRequest},
		{"invalid status", http.StatusBadRequest},
		{"officer does not belong to the complaint station", http.StatusBadRequest},
		{"trip no longer open", http.StatusBadRequest},
		{"trips are not compatible", http.StatusBadRequest},
		{"cannot match a trip with your own trip", http.StatusBadRequest},
		{"trip is not Open", http.StatusBadRequest},
		{"alert is not active", http.StatusBadRequest},
		{"failed to load stations: connection refused", http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.err, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithServiceError(rec, errors.New(c.err))
			if rec.Code != c.want {
				t.Errorf("expected %d, got %d", c.want, rec.Code)
			}

			var body models.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("response is not an error envelope: %v", err)
			}
			if body.Code != c.want {
				t.Errorf("envelope code %d does not match status %d", body.Code, c.want)
			}
		})
	}
}

func TestParseIDParam(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sos/alerts/15", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "15"})
		id, err := parseIDParam(req, "id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 15 {
			t.Errorf("expected 15, got %d", id)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sos/alerts/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		if _, err := parseIDParam(req, "id"); err == nil {
			t.Error("expected error for non-numeric id")
		}
	})

	t.Run("non-positive id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sos/alerts/0", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "0"})
		if _, err := parseIDParam(req, "id"); err == nil {
			t.Error("expected error for zero id")
		}
	})
}
