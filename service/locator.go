package service

import (
	"fmt"
	"sort"
	"suraksha/models"
	"suraksha/repository"
	"suraksha/utils"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const stationCacheKey = "stations:all"

// StationLocator resolves stations near a coordinate. The station list is
// cached with a short TTL and invalidated on station writes; distance math
// runs in process over the cached set.
type StationLocator struct {
	stationRepo    *repository.StationRepository
	cache          *gocache.Cache
	searchRadiusKm float64
	nearbyRadiusKm float64
}

// NewStationLocator creates a new station locator
func NewStationLocator(
	stationRepo *repository.StationRepository,
	searchRadiusKm, nearbyRadiusKm float64,
	cacheTTL time.Duration,
) *StationLocator {
	return &StationLocator{
		stationRepo:    stationRepo,
		cache:          gocache.New(cacheTTL, 2*cacheTTL),
		searchRadiusKm: searchRadiusKm,
		nearbyRadiusKm: nearbyRadiusKm,
	}
}

// stations returns the station list, serving from cache when fresh.
func (l *StationLocator) stations() ([]models.Station, error) {
	if cached, found := l.cache.Get(stationCacheKey); found {
		if stations, ok := cached.([]models.Station); ok {
			return stations, nil
		}
	}

	stations, err := l.stationRepo.GetAllStations()
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	l.cache.Set(stationCacheKey, stations, gocache.DefaultExpiration)
	return stations, nil
}

// Invalidate drops the cached station list. Called after station writes.
func (l *StationLocator) Invalidate() {
	l.cache.Delete(stationCacheKey)
}

// NearestStation returns the single closest station within the search
// radius, or nil when no station lies in range. A nil result is not an
// error; callers must treat it as "no station assignable".
func (l *StationLocator) NearestStation(lat, lng float64) (*models.Station, float64, error) {
	stations, err := l.stations()
	if err != nil {
		return nil, 0, err
	}

	station, distanceMeters, ok := nearestWithin(stations, lat, lng, l.searchRadiusKm)
	if !ok {
		return nil, 0, nil
	}
	return station, distanceMeters, nil
}

// NearbyStations returns up to 10 stations within the nearby radius,
// closest first, each annotated with a human-readable distance.
func (l *StationLocator) NearbyStations(lat, lng float64) ([]models.NearbyStation, error) {
	stations, err := l.stations()
	if err != nil {
		return nil, err
	}
	return nearbyWithin(stations, lat, lng, l.nearbyRadiusKm, 10), nil
}

// nearestWithin scans stations for the closest one within radiusKm.
// Equidistant candidates resolve to the lowest station ID: the input is
// ordered by ID and the strict < keeps the first seen.
func nearestWithin(stations []models.Station, lat, lng, radiusKm float64) (*models.Station, float64, bool) {
	var best *models.Station
	bestMeters := 0.0

	for i := range stations {
		s := &stations[i]
		meters := utils.DistanceMeters(lat, lng, s.Location.Latitude, s.Location.Longitude)
		if meters > radiusKm*1000 {
			continue
		}
		if best == nil || meters < bestMeters {
			best = s
			bestMeters = meters
		}
	}

	if best == nil {
		return nil, 0, false
	}
	return best, bestMeters, true
}

// nearbyWithin collects stations within radiusKm sorted by ascending
// distance, capped at limit.
func nearbyWithin(stations []models.Station, lat, lng, radiusKm float64, limit int) []models.NearbyStation {
	var results []models.NearbyStation
	for _, s := range stations {
		meters := utils.DistanceMeters(lat, lng, s.Location.Latitude, s.Location.Longitude)
		if meters > radiusKm*1000 {
			continue
		}
		results = append(results, models.NearbyStation{
			Station:        s,
			DistanceMeters: meters,
			Distance:       formatKm(meters),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceMeters == results[j].DistanceMeters {
			return results[i].StationID < results[j].StationID
		}
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// formatKm renders a meter distance as "X.XX km".
func formatKm(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/1000)
}
