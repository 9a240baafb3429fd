package models

import (
	"encoding/json"
	"testing"
)

func TestGeoPointMarshal(t *testing.T) {
	p := GeoPoint{Longitude: 77.2090, Latitude: 28.6139}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// GeoJSON order: longitude first.
	want := `{"type":"Point","coordinates":[77.209,28.6139]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestGeoPointUnmarshal(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		var p GeoPoint
		err := json.Unmarshal([]byte(`{"type":"Point","coordinates":[72.8777,19.076]}`), &p)
		if err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if p.Longitude != 72.8777 || p.Latitude != 19.076 {
			t.Errorf("got lng=%f lat=%f", p.Longitude, p.Latitude)
		}
	})

	t.Run("rejects non-Point geometry", func(t *testing.T) {
		var p GeoPoint
		err := json.Unmarshal([]byte(`{"type":"Polygon","coordinates":[1,2]}`), &p)
		if err == nil {
			t.Fatal("expected error for Polygon geometry")
		}
	})

	t.Run("rejects missing coordinates", func(t *testing.T) {
		var p GeoPoint
		if err := json.Unmarshal([]byte(`{"type":"Point"}`), &p); err == nil {
			t.Fatal("expected error for absent coordinates")
		}
	})

	t.Run("rejects short coordinates array", func(t *testing.T) {
		var p GeoPoint
		if err := json.Unmarshal([]byte(`{"type":"Point","coordinates":[77.209]}`), &p); err == nil {
			t.Fatal("expected error for single coordinate")
		}
	})

	t.Run("rejects extra coordinates", func(t *testing.T) {
		var p GeoPoint
		if err := json.Unmarshal([]byte(`{"type":"Point","coordinates":[77.209,28.61,100]}`), &p); err == nil {
			t.Fatal("expected error for three coordinates")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		orig := GeoPoint{Longitude: -0.1278, Latitude: 51.5074}
		data, err := json.Marshal(orig)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back GeoPoint
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if back != orig {
			t.Errorf("round trip changed point: %+v vs %+v", back, orig)
		}
	})
}
