package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
	"time"
)

// TripRepository handles database operations for travel-buddy trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip creates a new trip (status Open)
func (r *TripRepository) CreateTrip(trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			user_id, origin_longitude, origin_latitude,
			destination_longitude, destination_latitude,
			departure_at, status, note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		trip.UserID,
		trip.Origin.Longitude,
		trip.Origin.Latitude,
		trip.Destination.Longitude,
		trip.Destination.Latitude,
		trip.DepartureAt,
		trip.Status,
		trip.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	tripID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get trip ID: %w", err)
	}

	trip.TripID = tripID
	return nil
}

const tripColumns = `trip_id, user_id, origin_longitude, origin_latitude,
		destination_longitude, destination_latitude, departure_at,
		status, buddy_user_id, note, created_at, updated_at`

func scanTrip(row interface{ Scan(...interface{}) error }, t *models.Trip) error {
	return row.Scan(
		&t.TripID,
		&t.UserID,
		&t.Origin.Longitude,
		&t.Origin.Latitude,
		&t.Destination.Longitude,
		&t.Destination.Latitude,
		&t.DepartureAt,
		&t.Status,
		&t.BuddyUserID,
		&t.Note,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// GetTripByID retrieves a trip by ID
func (r *TripRepository) GetTripByID(tripID int64) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = ?`

	var trip models.Trip
	err := scanTrip(r.db.QueryRow(query, tripID), &trip)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// GetTripsByUserID retrieves all trips created by a user, newest first
func (r *TripRepository) GetTripsByUserID(userID int64) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}

// GetOpenTripsInWindow retrieves other users' Open trips departing within
// the given window. Route proximity is filtered in the service layer.
func (r *TripRepository) GetOpenTripsInWindow(excludeUserID int64, from, to time.Time) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE status = ? AND user_id != ? AND departure_at BETWEEN ? AND ?
		ORDER BY departure_at ASC`

	rows, err := r.db.Query(query, models.TripStatusOpen, excludeUserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query open trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan open trip: %w", err)
		}
		trips = append(trips, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open trips: %w", err)
	}

	return trips, nil
}

// MatchTrips pairs two open trips in one transaction: both become Matched
// and reference the other trip's owner as buddy. The conditional updates
// fail the match if either trip is no longer Open.
func (r *TripRepository) MatchTrips(tripID, buddyTripID, tripOwnerID, buddyOwnerID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin match transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE trips SET status = ?, buddy_user_id = ?, updated_at = NOW()
		WHERE trip_id = ? AND status = ?`,
		models.TripStatusMatched, buddyOwnerID, tripID, models.TripStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("failed to match trip: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("trip no longer open")
	}

	result, err = tx.Exec(
		`UPDATE trips SET status = ?, buddy_user_id = ?, updated_at = NOW()
		WHERE trip_id = ? AND status = ?`,
		models.TripStatusMatched, tripOwnerID, buddyTripID, models.TripStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("failed to match buddy trip: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("trip no longer open")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match: %w", err)
	}
	return nil
}

// UpdateTripStatus overwrites the trip status
func (r *TripRepository) UpdateTripStatus(tripID int64, status models.TripStatus) error {
	_, err := r.db.Exec(
		`UPDATE trips SET status = ?, updated_at = NOW() WHERE trip_id = ?`,
		status, tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	return nil
}
