package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
	"time"

	"github.com/google/uuid"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// GenerateComplaintNumber generates a unique complaint number.
// Format: COMP-YYYYMMDD-{UUID}
func (r *ComplaintRepository) GenerateComplaintNumber() string {
	datePrefix := time.Now().UTC().Format("20060102")
	uniqueID := uuid.New().String()[:8]
	return fmt.Sprintf("COMP-%s-%s", datePrefix, uniqueID)
}

// CreateComplaint creates a new complaint
func (r *ComplaintRepository) CreateComplaint(complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (
			complaint_number, user_id, station_id, title, description,
			longitude, latitude, status, priority
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		complaint.ComplaintNumber,
		complaint.UserID,
		complaint.StationID,
		complaint.Title,
		complaint.Description,
		complaint.Location.Longitude,
		complaint.Location.Latitude,
		complaint.Status,
		complaint.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	complaintID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get complaint ID: %w", err)
	}

	complaint.ComplaintID = complaintID
	return nil
}

const complaintColumns = `complaint_id, complaint_number, user_id, station_id,
		title, description, longitude, latitude, status, priority,
		assigned_officer_id, resolved_at, created_at, updated_at`

func scanComplaint(row interface{ Scan(...interface{}) error }, c *models.Complaint) error {
	return row.Scan(
		&c.ComplaintID,
		&c.ComplaintNumber,
		&c.UserID,
		&c.StationID,
		&c.Title,
		&c.Description,
		&c.Location.Longitude,
		&c.Location.Latitude,
		&c.Status,
		&c.Priority,
		&c.AssignedOfficerID,
		&c.ResolvedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// GetComplaintByID retrieves a complaint by its ID
func (r *ComplaintRepository) GetComplaintByID(complaintID int64) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE complaint_id = ?`

	var complaint models.Complaint
	err := scanComplaint(r.db.QueryRow(query, complaintID), &complaint)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("complaint not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return &complaint, nil
}

// GetComplaintsByUserID retrieves all complaints filed by a user, newest first
func (r *ComplaintRepository) GetComplaintsByUserID(userID int64) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := scanComplaint(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

// GetComplaintsByStationID retrieves all complaints filed against a station
func (r *ComplaintRepository) GetComplaintsByStationID(stationID int64) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE station_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query station complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := scanComplaint(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

// UpdateComplaintStatus overwrites the complaint status, stamping
// resolved_at the first time it reaches Resolved.
func (r *ComplaintRepository) UpdateComplaintStatus(complaintID int64, status models.ComplaintStatus) error {
	_, err := r.db.Exec(
		`UPDATE complaints SET status = ?, updated_at = NOW() WHERE complaint_id = ?`,
		status, complaintID,
	)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	if status == models.ComplaintStatusResolved {
		_, err = r.db.Exec(
			`UPDATE complaints SET resolved_at = NOW() WHERE complaint_id = ? AND resolved_at IS NULL`,
			complaintID,
		)
		if err != nil {
			return fmt.Errorf("failed to update resolved_at: %w", err)
		}
	}

	return nil
}

// AssignOfficer binds an officer to a complaint. Same-station validation
// happens in the service layer before this write.
func (r *ComplaintRepository) AssignOfficer(complaintID, officerID int64) error {
	_, err := r.db.Exec(
		`UPDATE complaints SET assigned_officer_id = ?, updated_at = NOW() WHERE complaint_id = ?`,
		officerID, complaintID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign complaint officer: %w", err)
	}
	return nil
}
