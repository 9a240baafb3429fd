package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetNearbyStationsValidation(t *testing.T) {
	h := NewStationHandler(nil)

	cases := []struct {
		name  string
		query string
	}{
		{"no parameters", ""},
		{"missing lng", "?lat=28.6"},
		{"missing lat", "?lng=77.2"},
		{"non-numeric lat", "?lat=abc&lng=77.2"},
		{"latitude out of range", "?lat=95&lng=77.2"},
		{"longitude out of range", "?lat=28.6&lng=200"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stations/nearby"+c.query, nil)
			rec := httptest.NewRecorder()
			h.GetNearbyStations(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
