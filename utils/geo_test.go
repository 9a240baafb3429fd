package utils

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		if d := DistanceKm(28.6139, 77.2090, 28.6139, 77.2090); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		got := DistanceKm(0, 0, 0, 1)
		want := math.Pi * 6371.0 / 180 // ~111.19 km
		if math.Abs(got-want) > 0.01 {
			t.Errorf("expected %f, got %f", want, got)
		}
	})

	t.Run("delhi to mumbai", func(t *testing.T) {
		got := DistanceKm(28.6139, 77.2090, 19.0760, 72.8777)
		if got < 1140 || got > 1170 {
			t.Errorf("expected roughly 1153 km, got %f", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
		b := DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("distances differ: %f vs %f", a, b)
		}
	})
}

func TestDistanceMeters(t *testing.T) {
	km := DistanceKm(28.6139, 77.2090, 28.7041, 77.1025)
	m := DistanceMeters(28.6139, 77.2090, 28.7041, 77.1025)
	if math.Abs(m-km*1000) > 0.001 {
		t.Errorf("meters %f does not match km %f", m, km)
	}
}
