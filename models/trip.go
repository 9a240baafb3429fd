package models

import (
	"database/sql"
	"time"
)

// TripStatus represents the lifecycle of a travel-buddy trip
type TripStatus string

const (
	TripStatusOpen      TripStatus = "Open"
	TripStatusMatched   TripStatus = "Matched"
	TripStatusCompleted TripStatus = "Completed"
	TripStatusCancelled TripStatus = "Cancelled"
)

// Trip is a travel-buddy matching request: a planned journey looking for
// another user travelling a similar route at a similar time.
type Trip struct {
	TripID      int64         `db:"trip_id" json:"trip_id"`
	UserID      int64         `db:"user_id" json:"user_id"`
	Origin      GeoPoint      `json:"origin"`
	Destination GeoPoint      `json:"destination"`
	DepartureAt time.Time     `db:"departure_at" json:"departure_at"`
	Status      TripStatus    `db:"status" json:"status"`
	BuddyUserID sql.NullInt64 `db:"buddy_user_id" json:"buddy_user_id"`
	Note        string        `db:"note" json:"note"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   sql.NullTime  `db:"updated_at" json:"updated_at"`
}
