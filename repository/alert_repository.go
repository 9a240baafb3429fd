package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
	"time"

	"github.com/google/uuid"
)

// AlertRepository handles database operations for SOS alerts
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GenerateAlertNumber generates a unique shareable alert number.
// Format: ALERT-YYYYMMDD-{UUID}
func (r *AlertRepository) GenerateAlertNumber() string {
	datePrefix := time.Now().UTC().Format("20060102")
	uniqueID := uuid.New().String()[:8]
	return fmt.Sprintf("ALERT-%s-%s", datePrefix, uniqueID)
}

// CreateAlert creates a new SOS alert row (status Active, Unassigned)
func (r *AlertRepository) CreateAlert(alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			alert_number, user_id, longitude, latitude,
			status, assignment_status, guardian_notified, guardian_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		alert.AlertNumber,
		alert.UserID,
		alert.Location.Longitude,
		alert.Location.Latitude,
		alert.Status,
		alert.AssignmentStatus,
		alert.GuardianNotified,
		alert.GuardianCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	alertID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get alert ID: %w", err)
	}

	alert.AlertID = alertID
	return nil
}

const alertColumns = `alert_id, alert_number, user_id, longitude, latitude,
		status, assignment_status, nearest_station_id, distance_to_station,
		assigned_at, guardian_notified, guardian_count, created_at, updated_at`

func scanAlert(row interface{ Scan(...interface{}) error }, a *models.Alert) error {
	return row.Scan(
		&a.AlertID,
		&a.AlertNumber,
		&a.UserID,
		&a.Location.Longitude,
		&a.Location.Latitude,
		&a.Status,
		&a.AssignmentStatus,
		&a.NearestStationID,
		&a.DistanceToStation,
		&a.AssignedAt,
		&a.GuardianNotified,
		&a.GuardianCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// GetAlertByID retrieves an alert by ID
func (r *AlertRepository) GetAlertByID(alertID int64) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = ?`

	var alert models.Alert
	err := scanAlert(r.db.QueryRow(query, alertID), &alert)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("alert not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return &alert, nil
}

// GetAlertsByUserID retrieves all alerts of a user, newest first
func (r *AlertRepository) GetAlertsByUserID(userID int64) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}

	return alerts, nil
}

// SetNearestStation persists the located station and its distance on an
// alert before officer assignment runs.
func (r *AlertRepository) SetNearestStation(alertID, stationID int64, distanceMeters float64) error {
	query := `
		UPDATE alerts
		SET nearest_station_id = ?, distance_to_station = ?, updated_at = NOW()
		WHERE alert_id = ?
	`

	_, err := r.db.Exec(query, stationID, distanceMeters, alertID)
	if err != nil {
		return fmt.Errorf("failed to set nearest station: %w", err)
	}
	return nil
}

// ApplyAssignment binds a station and officer set to an alert in a single
// transaction: the alert row update and the alert_officers replacement
// commit together, so concurrent assignments serialize at the database and
// the later transaction's officer set wins whole, never a torn mix.
// Re-invocation replaces the previous assignment.
func (r *AlertRepository) ApplyAssignment(assignment *models.AlertAssignment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin assignment transaction: %w", err)
	}
	defer tx.Rollback()

	// No RowsAffected check here: the driver reports changed rows, not
	// matched rows, so re-applying an identical assignment within the same
	// second changes nothing and would look like a missing row. Callers
	// guarantee the alert exists before calling.
	_, err = tx.Exec(
		`UPDATE alerts
		SET nearest_station_id = ?,
			distance_to_station = ?,
			assignment_status = ?,
			assigned_at = ?,
			updated_at = NOW()
		WHERE alert_id = ?`,
		assignment.StationID,
		assignment.DistanceToStation,
		models.AssignmentAssigned,
		assignment.AssignedAt,
		assignment.AlertID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert assignment: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM alert_officers WHERE alert_id = ?`, assignment.AlertID); err != nil {
		return fmt.Errorf("failed to clear previous officers: %w", err)
	}

	for _, officerID := range assignment.OfficerIDs {
		if _, err := tx.Exec(
			`INSERT INTO alert_officers (alert_id, officer_id) VALUES (?, ?)`,
			assignment.AlertID, officerID,
		); err != nil {
			return fmt.Errorf("failed to insert alert officer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignment: %w", err)
	}
	return nil
}

// GetOfficersByAlert retrieves the officers currently bound to an alert
func (r *AlertRepository) GetOfficersByAlert(alertID int64) ([]models.Officer, error) {
	query := `
		SELECT o.officer_id, o.station_id, o.name, o.email, o.phone,
			o.password_hash, o.role, o.created_at, o.updated_at
		FROM alert_officers ao
		JOIN officers o ON o.officer_id = ao.officer_id
		WHERE ao.alert_id = ?
		ORDER BY o.officer_id ASC
	`

	rows, err := r.db.Query(query, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert officers: %w", err)
	}
	defer rows.Close()

	var officers []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := scanOfficer(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan alert officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert officers: %w", err)
	}

	return officers, nil
}

// GetAlertView loads an alert with its station and officer references
// expanded via explicit joins.
func (r *AlertRepository) GetAlertView(alertID int64) (*models.AlertView, error) {
	alert, err := r.GetAlertByID(alertID)
	if err != nil {
		return nil, err
	}

	view := &models.AlertView{Alert: *alert}

	if alert.NearestStationID.Valid {
		var station models.Station
		err := r.db.QueryRow(
			`SELECT station_id, name, area, city, helpline, longitude, latitude,
				created_at, updated_at
			FROM stations WHERE station_id = ?`,
			alert.NearestStationID.Int64,
		).Scan(
			&station.StationID,
			&station.Name,
			&station.Area,
			&station.City,
			&station.Helpline,
			&station.Location.Longitude,
			&station.Location.Latitude,
			&station.CreatedAt,
			&station.UpdatedAt,
		)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to load alert station: %w", err)
		}
		if err == nil {
			view.NearestStation = &station
		}
	}

	officers, err := r.GetOfficersByAlert(alertID)
	if err != nil {
		return nil, err
	}
	view.AssignedOfficers = officers

	return view, nil
}

// UpdateAlertStatus overwrites the alert lifecycle status, optionally
// driving the assignment status in the same statement (resolve/cancel
// close out Assigned/In Progress as Resolved).
func (r *AlertRepository) UpdateAlertStatus(alertID int64, status models.AlertStatus, assignmentStatus *models.AssignmentStatus) error {
	var err error
	if assignmentStatus != nil {
		_, err = r.db.Exec(
			`UPDATE alerts SET status = ?, assignment_status = ?, updated_at = NOW() WHERE alert_id = ?`,
			status, *assignmentStatus, alertID,
		)
	} else {
		_, err = r.db.Exec(
			`UPDATE alerts SET status = ?, updated_at = NOW() WHERE alert_id = ?`,
			status, alertID,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	return nil
}

// UpdateAssignmentStatus overwrites only the assignment status
func (r *AlertRepository) UpdateAssignmentStatus(alertID int64, assignmentStatus models.AssignmentStatus) error {
	_, err := r.db.Exec(
		`UPDATE alerts SET assignment_status = ?, updated_at = NOW() WHERE alert_id = ?`,
		assignmentStatus, alertID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	return nil
}

// GetUnassignedActiveAlerts retrieves Active alerts still waiting for a
// station or officers, oldest first (dispatch worker input).
func (r *AlertRepository) GetUnassignedActiveAlerts(limit int) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + `
		FROM alerts
		WHERE status = ? AND assignment_status = ?
		ORDER BY created_at ASC
		LIMIT ?`

	rows, err := r.db.Query(query, models.AlertStatusActive, models.AssignmentUnassigned, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unassigned alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan unassigned alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unassigned alerts: %w", err)
	}

	return alerts, nil
}
