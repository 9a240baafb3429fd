package models

import (
	"database/sql"
	"time"
)

// Role represents an account role
type Role string

const (
	RoleUser   Role = "user"
	RolePolice Role = "police"
	RoleAdmin  Role = "admin"
)

// MaxGuardiansPerUser caps the guardian contact list size per user.
const MaxGuardiansPerUser = 5

// User represents a citizen (or admin) account
type User struct {
	UserID       int64           `db:"user_id" json:"user_id"`
	Name         string          `db:"name" json:"name"`
	Email        string          `db:"email" json:"email"`
	Phone        string          `db:"phone" json:"phone"`
	PasswordHash string          `db:"password_hash" json:"-"`
	Role         Role            `db:"role" json:"role"`
	Longitude    sql.NullFloat64 `db:"longitude" json:"-"`
	Latitude     sql.NullFloat64 `db:"latitude" json:"-"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    sql.NullTime    `db:"updated_at" json:"updated_at"`
}

// Location returns the user's last known location, if any.
func (u *User) Location() *GeoPoint {
	if !u.Latitude.Valid || !u.Longitude.Valid {
		return nil
	}
	return &GeoPoint{Longitude: u.Longitude.Float64, Latitude: u.Latitude.Float64}
}

// Guardian is a trusted contact notified on SOS trigger.
// Guardians are owned by their user and have no independent lifecycle.
type Guardian struct {
	GuardianID int64     `db:"guardian_id" json:"guardian_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Name       string    `db:"name" json:"name"`
	Phone      string    `db:"phone" json:"phone"`
	Email      string    `db:"email" json:"email"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Station represents a police station
type Station struct {
	StationID int64        `db:"station_id" json:"station_id"`
	Name      string       `db:"name" json:"name"`
	Area      string       `db:"area" json:"area"`
	City      string       `db:"city" json:"city"`
	Helpline  string       `db:"helpline" json:"helpline"`
	Location  GeoPoint     `json:"location"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at" json:"updated_at"`
}

// Officer represents a police officer account; every officer belongs to
// exactly one station and carries the fixed role "police".
type Officer struct {
	OfficerID    int64        `db:"officer_id" json:"officer_id"`
	StationID    int64        `db:"station_id" json:"station_id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	Phone        string       `db:"phone" json:"phone"`
	PasswordHash string       `db:"password_hash" json:"-"`
	Role         Role         `db:"role" json:"role"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at" json:"updated_at"`
}

// ErrorResponse is the JSON error envelope returned by all handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
