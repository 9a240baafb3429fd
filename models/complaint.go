package models

import (
	"database/sql"
	"time"
)

// ComplaintStatus represents the possible statuses of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

// ComplaintPriority represents complaint priority levels
type ComplaintPriority string

const (
	PriorityLow      ComplaintPriority = "Low"
	PriorityMedium   ComplaintPriority = "Medium"
	PriorityHigh     ComplaintPriority = "High"
	PriorityCritical ComplaintPriority = "Critical"
)

// ValidComplaintStatus reports whether s is one of the fixed status values.
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// ValidComplaintPriority reports whether p is one of the fixed priority values.
func ValidComplaintPriority(p ComplaintPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Complaint represents a complaint filed against a station
type Complaint struct {
	ComplaintID       int64             `db:"complaint_id" json:"complaint_id"`
	ComplaintNumber   string            `db:"complaint_number" json:"complaint_number"`
	UserID            int64             `db:"user_id" json:"user_id"`
	StationID         int64             `db:"station_id" json:"station_id"`
	Title             string            `db:"title" json:"title"`
	Description       string            `db:"description" json:"description"`
	Location          GeoPoint          `json:"location"`
	Status            ComplaintStatus   `db:"status" json:"status"`
	Priority          ComplaintPriority `db:"priority" json:"priority"`
	AssignedOfficerID sql.NullInt64     `db:"assigned_officer_id" json:"assigned_officer_id"`
	ResolvedAt        sql.NullTime      `db:"resolved_at" json:"resolved_at"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         sql.NullTime      `db:"updated_at" json:"updated_at"`
}
