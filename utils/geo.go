package utils

import "math"

// Earth radii for the two distance units callers ask for.
const (
	earthRadiusKm     = 6371.0
	earthRadiusMeters = 6371000.0
)

// haversine computes the great-circle distance between two points in the
// unit of the given Earth radius. Inputs are degrees; no range validation,
// any finite lat/lon is accepted.
func haversine(lat1, lon1, lat2, lon2, radius float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceMeters returns the great-circle distance between two points in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return haversine(lat1, lon1, lat2, lon2, earthRadiusMeters)
}

// DistanceKm returns the great-circle distance between two points in kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return haversine(lat1, lon1, lat2, lon2, earthRadiusKm)
}
