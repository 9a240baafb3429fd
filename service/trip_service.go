package service

import (
	"fmt"
	"time"

	"suraksha/models"
	"suraksha/repository"
	"suraksha/utils"
)

const (
	// matchWindow bounds how far apart two departures may be for a match.
	matchWindow = 2 * time.Hour
	// matchRadiusMeters bounds how far apart origins and destinations may be.
	matchRadiusMeters = 5000.0
)

// TripService handles travel-buddy trips: planned journeys matched with
// other users travelling a similar route at a similar time.
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// CreateTrip registers a new open trip for the caller
func (s *TripService) CreateTrip(userID int64, req *models.CreateTripRequest) (*models.Trip, error) {
	trip := &models.Trip{
		UserID:      userID,
		Origin:      models.GeoPoint{Longitude: req.Origin.Lng, Latitude: req.Origin.Lat},
		Destination: models.GeoPoint{Longitude: req.Destination.Lng, Latitude: req.Destination.Lat},
		DepartureAt: req.DepartureAt.UTC(),
		Status:      models.TripStatusOpen,
		Note:        req.Note,
	}
	if err := s.tripRepo.CreateTrip(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip loads one trip; owners and their matched buddy may view it.
func (s *TripService) GetTrip(principal *models.Principal, tripID int64) (*models.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return nil, err
	}
	if !canViewTrip(principal, trip) {
		return nil, fmt.Errorf("forbidden")
	}
	return trip, nil
}

// GetUserTrips lists the caller's trips, newest first
func (s *TripService) GetUserTrips(userID int64) ([]models.Trip, error) {
	return s.tripRepo.GetTripsByUserID(userID)
}

// FindMatches returns other users' open trips compatible with the given
// trip: departing within the match window and with both endpoints within
// the match radius.
func (s *TripService) FindMatches(userID, tripID int64) ([]models.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("forbidden")
	}
	if trip.Status != models.TripStatusOpen {
		return nil, fmt.Errorf("trip no longer open")
	}

	from := trip.DepartureAt.Add(-matchWindow)
	to := trip.DepartureAt.Add(matchWindow)
	candidates, err := s.tripRepo.GetOpenTripsInWindow(userID, from, to)
	if err != nil {
		return nil, err
	}

	var matches []models.Trip
	for _, c := range candidates {
		if tripsCompatible(trip, &c) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// JoinTrip pairs the caller's open trip with another user's open trip
func (s *TripService) JoinTrip(userID, tripID, buddyTripID int64) (*models.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("forbidden")
	}

	buddyTrip, err := s.tripRepo.GetTripByID(buddyTripID)
	if err != nil {
		return nil, err
	}
	if buddyTrip.UserID == userID {
		return nil, fmt.Errorf("cannot match a trip with your own trip")
	}
	if trip.Status != models.TripStatusOpen || buddyTrip.Status != models.TripStatusOpen {
		return nil, fmt.Errorf("trip no longer open")
	}
	if !tripsCompatible(trip, buddyTrip) {
		return nil, fmt.Errorf("trips are not compatible")
	}

	if err := s.tripRepo.MatchTrips(tripID, buddyTripID, trip.UserID, buddyTrip.UserID); err != nil {
		return nil, err
	}
	return s.tripRepo.GetTripByID(tripID)
}

// CompleteTrip marks the caller's matched trip as completed
func (s *TripService) CompleteTrip(userID, tripID int64) (*models.Trip, error) {
	return s.closeTrip(userID, tripID, models.TripStatusMatched, models.TripStatusCompleted)
}

// CancelTrip cancels the caller's open trip
func (s *TripService) CancelTrip(userID, tripID int64) (*models.Trip, error) {
	return s.closeTrip(userID, tripID, models.TripStatusOpen, models.TripStatusCancelled)
}

func (s *TripService) closeTrip(userID, tripID int64, from, to models.TripStatus) (*models.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("forbidden")
	}
	if trip.Status != from {
		return nil, fmt.Errorf("trip is not %s", from)
	}
	if err := s.tripRepo.UpdateTripStatus(tripID, to); err != nil {
		return nil, err
	}
	return s.tripRepo.GetTripByID(tripID)
}

// tripsCompatible reports whether two trips can travel together: departures
// within the match window and both endpoints within the match radius.
func tripsCompatible(a, b *models.Trip) bool {
	gap := a.DepartureAt.Sub(b.DepartureAt)
	if gap < 0 {
		gap = -gap
	}
	if gap > matchWindow {
		return false
	}

	originDist := utils.DistanceMeters(
		a.Origin.Latitude, a.Origin.Longitude,
		b.Origin.Latitude, b.Origin.Longitude,
	)
	if originDist > matchRadiusMeters {
		return false
	}

	destDist := utils.DistanceMeters(
		a.Destination.Latitude, a.Destination.Longitude,
		b.Destination.Latitude, b.Destination.Longitude,
	)
	return destDist <= matchRadiusMeters
}

func canViewTrip(principal *models.Principal, trip *models.Trip) bool {
	if principal.IsAdmin() {
		return true
	}
	if principal.Role != models.RoleUser {
		return false
	}
	if principal.UserID == trip.UserID {
		return true
	}
	return trip.BuddyUserID.Valid && trip.BuddyUserID.Int64 == principal.UserID
}
