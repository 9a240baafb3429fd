package service

import (
	"database/sql"
	"testing"
	"time"

	"suraksha/models"
)

func baseTrip(id, userID int64, departure time.Time) *models.Trip {
	return &models.Trip{
		TripID:      id,
		UserID:      userID,
		Origin:      models.GeoPoint{Latitude: 28.6139, Longitude: 77.2090},
		Destination: models.GeoPoint{Latitude: 28.7041, Longitude: 77.1025},
		DepartureAt: departure,
		Status:      models.TripStatusOpen,
	}
}

func TestTripsCompatible(t *testing.T) {
	departure := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	t.Run("same route and time", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure)
		if !tripsCompatible(a, b) {
			t.Error("identical trips should be compatible")
		}
	})

	t.Run("departure inside the window", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure.Add(90*time.Minute))
		if !tripsCompatible(a, b) {
			t.Error("90 minute gap is within the window")
		}
	})

	t.Run("departure outside the window", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure.Add(3*time.Hour))
		if tripsCompatible(a, b) {
			t.Error("3 hour gap exceeds the window")
		}
	})

	t.Run("window is symmetric", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure.Add(-90*time.Minute))
		if !tripsCompatible(a, b) {
			t.Error("earlier departure within the window should match")
		}
	})

	t.Run("origins too far apart", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure)
		b.Origin = models.GeoPoint{Latitude: 28.7000, Longitude: 77.2090} // ~9.5 km north
		if tripsCompatible(a, b) {
			t.Error("origins beyond the match radius should not match")
		}
	})

	t.Run("destinations too far apart", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure)
		b.Destination = models.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}
		if tripsCompatible(a, b) {
			t.Error("destinations beyond the match radius should not match")
		}
	})

	t.Run("nearby endpoints match", func(t *testing.T) {
		a := baseTrip(1, 1, departure)
		b := baseTrip(2, 2, departure)
		b.Origin = models.GeoPoint{Latitude: 28.6200, Longitude: 77.2150} // well under 5 km
		b.Destination = models.GeoPoint{Latitude: 28.7100, Longitude: 77.1100}
		if !tripsCompatible(a, b) {
			t.Error("endpoints within the match radius should match")
		}
	})
}

func TestCanViewTrip(t *testing.T) {
	trip := &models.Trip{
		TripID:      1,
		UserID:      7,
		BuddyUserID: sql.NullInt64{Int64: 9, Valid: true},
	}

	cases := []struct {
		name      string
		principal models.Principal
		want      bool
	}{
		{"owner", models.Principal{Role: models.RoleUser, UserID: 7}, true},
		{"matched buddy", models.Principal{Role: models.RoleUser, UserID: 9}, true},
		{"unrelated user", models.Principal{Role: models.RoleUser, UserID: 11}, false},
		{"admin", models.Principal{Role: models.RoleAdmin}, true},
		{"police", models.Principal{Role: models.RolePolice, OfficerID: 2, StationID: 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := canViewTrip(&c.principal, trip); got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}
