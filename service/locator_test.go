package service

import (
	"testing"

	"suraksha/models"
)

func testStations() []models.Station {
	return []models.Station{
		{StationID: 1, Name: "Central", Location: models.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}},
		{StationID: 2, Name: "North", Location: models.GeoPoint{Latitude: 28.7041, Longitude: 77.1025}},
		{StationID: 3, Name: "Far South", Location: models.GeoPoint{Latitude: 19.0760, Longitude: 72.8777}},
	}
}

func TestNearestWithin(t *testing.T) {
	t.Run("picks the closest station", func(t *testing.T) {
		s, meters, ok := nearestWithin(testStations(), 28.6200, 77.2100, 50)
		if !ok {
			t.Fatal("expected a station")
		}
		if s.StationID != 1 {
			t.Errorf("expected station 1, got %d", s.StationID)
		}
		if meters <= 0 || meters > 1000 {
			t.Errorf("unexpected distance %f m", meters)
		}
	})

	t.Run("no station within radius", func(t *testing.T) {
		// Query point near Bangalore; all test stations are far away.
		_, _, ok := nearestWithin(testStations(), 12.9716, 77.5946, 50)
		if ok {
			t.Error("expected no station within 50 km")
		}
	})

	t.Run("equidistant stations resolve to lowest ID", func(t *testing.T) {
		stations := []models.Station{
			{StationID: 1, Location: models.GeoPoint{Latitude: 0, Longitude: 0.01}},
			{StationID: 2, Location: models.GeoPoint{Latitude: 0, Longitude: -0.01}},
		}
		s, _, ok := nearestWithin(stations, 0, 0, 50)
		if !ok {
			t.Fatal("expected a station")
		}
		if s.StationID != 1 {
			t.Errorf("expected station 1 on tie, got %d", s.StationID)
		}
	})

	t.Run("empty station list", func(t *testing.T) {
		_, _, ok := nearestWithin(nil, 28.6139, 77.2090, 50)
		if ok {
			t.Error("expected no station for empty list")
		}
	})
}

func TestNearbyWithin(t *testing.T) {
	t.Run("sorted by distance", func(t *testing.T) {
		results := nearbyWithin(testStations(), 28.7000, 77.1100, 50, 10)
		if len(results) != 2 {
			t.Fatalf("expected 2 stations, got %d", len(results))
		}
		if results[0].StationID != 2 || results[1].StationID != 1 {
			t.Errorf("wrong order: %d, %d", results[0].StationID, results[1].StationID)
		}
		if results[0].DistanceMeters > results[1].DistanceMeters {
			t.Error("results not sorted by ascending distance")
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		results := nearbyWithin(testStations(), 28.6500, 77.1500, 50, 1)
		if len(results) != 1 {
			t.Fatalf("expected 1 station, got %d", len(results))
		}
	})

	t.Run("excludes out-of-radius stations", func(t *testing.T) {
		results := nearbyWithin(testStations(), 28.6139, 77.2090, 5, 10)
		for _, r := range results {
			if r.StationID == 3 {
				t.Error("station 3 is over 1000 km away and should be excluded")
			}
		}
	})
}

func TestFormatKm(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0.00 km"},
		{1234, "1.23 km"},
		{1236, "1.24 km"},
		{50000, "50.00 km"},
	}
	for _, c := range cases {
		if got := formatKm(c.meters); got != c.want {
			t.Errorf("formatKm(%f) = %q, want %q", c.meters, got, c.want)
		}
	}
}
