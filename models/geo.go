package models

import (
	"encoding/json"
	"fmt"
)

// GeoPoint is a geographic point serialized as GeoJSON:
// {"type":"Point","coordinates":[longitude,latitude]}.
// Coordinate order is longitude first, the opposite of the {lat,lng}
// order used in API request bodies. The inversion is confined to this type.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// MarshalJSON serializes the point in GeoJSON longitude-first order.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{p.Longitude, p.Latitude},
	})
}

// UnmarshalJSON parses a GeoJSON Point. A Point must carry exactly a
// longitude and a latitude; a missing or short coordinates array is an
// error, never a silent (0,0).
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var raw geoJSONPoint
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "Point" {
		return fmt.Errorf("unsupported geometry type: %q", raw.Type)
	}
	if len(raw.Coordinates) != 2 {
		return fmt.Errorf("point has %d coordinates, want 2", len(raw.Coordinates))
	}
	p.Longitude = raw.Coordinates[0]
	p.Latitude = raw.Coordinates[1]
	return nil
}

// LatLng is the {lat,lng} coordinate pair used in API request/response bodies.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
