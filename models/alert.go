package models

import (
	"database/sql"
	"time"
)

// AlertStatus represents the lifecycle status of an SOS alert
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "Active"
	AlertStatusResolved  AlertStatus = "Resolved"
	AlertStatusCancelled AlertStatus = "Cancelled"
)

// AssignmentStatus tracks officer assignment progress independently of the
// alert lifecycle status.
type AssignmentStatus string

const (
	AssignmentUnassigned AssignmentStatus = "Unassigned"
	AssignmentAssigned   AssignmentStatus = "Assigned"
	AssignmentInProgress AssignmentStatus = "In Progress"
	AssignmentResolved   AssignmentStatus = "Resolved"
)

// ValidAlertStatus reports whether s is one of the fixed alert status values.
func ValidAlertStatus(s AlertStatus) bool {
	switch s {
	case AlertStatusActive, AlertStatusResolved, AlertStatusCancelled:
		return true
	}
	return false
}

// Alert represents an SOS emergency record. Alerts are never physically
// deleted; they are soft-terminated via status.
type Alert struct {
	AlertID           int64            `db:"alert_id" json:"alert_id"`
	AlertNumber       string           `db:"alert_number" json:"alert_number"`
	UserID            int64            `db:"user_id" json:"user_id"`
	Location          GeoPoint         `json:"location"`
	Status            AlertStatus      `db:"status" json:"status"`
	AssignmentStatus  AssignmentStatus `db:"assignment_status" json:"assignment_status"`
	NearestStationID  sql.NullInt64    `db:"nearest_station_id" json:"nearest_station_id"`
	DistanceToStation sql.NullFloat64  `db:"distance_to_station" json:"distance_to_station"` // meters
	AssignedAt        sql.NullTime     `db:"assigned_at" json:"assigned_at"`
	GuardianNotified  bool             `db:"guardian_notified" json:"guardian_notified"`
	GuardianCount     int              `db:"guardian_count" json:"guardian_count"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         sql.NullTime     `db:"updated_at" json:"updated_at"`
}

// AlertView is an alert with its station and officer references expanded.
// Built by an explicit repository join, not lazy reference resolution.
type AlertView struct {
	Alert
	NearestStation   *Station  `json:"nearest_station"`
	AssignedOfficers []Officer `json:"assigned_officers"`
}

// AlertAssignment is the set of fields written atomically when officers
// are bound to an alert. Re-assignment replaces the previous set whole.
type AlertAssignment struct {
	AlertID           int64
	StationID         int64
	OfficerIDs        []int64
	DistanceToStation float64 // meters
	AssignedAt        time.Time
}
