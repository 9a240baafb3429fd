package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
)

// OfficerRepository handles database operations for police officers
type OfficerRepository struct {
	db *sql.DB
}

// NewOfficerRepository creates a new officer repository
func NewOfficerRepository(db *sql.DB) *OfficerRepository {
	return &OfficerRepository{db: db}
}

const officerColumns = `officer_id, station_id, name, email, phone, password_hash, role, created_at, updated_at`

func scanOfficer(row interface{ Scan(...interface{}) error }, o *models.Officer) error {
	return row.Scan(
		&o.OfficerID,
		&o.StationID,
		&o.Name,
		&o.Email,
		&o.Phone,
		&o.PasswordHash,
		&o.Role,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

// CreateOfficer creates a new officer bound to a station
func (r *OfficerRepository) CreateOfficer(officer *models.Officer) error {
	query := `
		INSERT INTO officers (station_id, name, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?, 'police')
	`

	result, err := r.db.Exec(
		query,
		officer.StationID,
		officer.Name,
		officer.Email,
		officer.Phone,
		officer.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create officer: %w", err)
	}

	officerID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get officer ID: %w", err)
	}

	officer.OfficerID = officerID
	officer.Role = models.RolePolice
	return nil
}

// GetOfficerByID retrieves an officer by ID
func (r *OfficerRepository) GetOfficerByID(officerID int64) (*models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE officer_id = ?`

	var officer models.Officer
	err := scanOfficer(r.db.QueryRow(query, officerID), &officer)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("officer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get officer: %w", err)
	}

	return &officer, nil
}

// GetOfficerByEmail retrieves an officer by email (login lookup)
func (r *OfficerRepository) GetOfficerByEmail(email string) (*models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE email = ?`

	var officer models.Officer
	err := scanOfficer(r.db.QueryRow(query, email), &officer)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("officer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get officer by email: %w", err)
	}

	return &officer, nil
}

// GetOfficersByStation retrieves up to limit officers of a station.
// Selection is "first N" by officer ID, deterministic per query; no
// fairness or load policy.
func (r *OfficerRepository) GetOfficersByStation(stationID int64, limit int) ([]models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE station_id = ? ORDER BY officer_id ASC LIMIT ?`

	rows, err := r.db.Query(query, stationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query station officers: %w", err)
	}
	defer rows.Close()

	var officers []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := scanOfficer(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating officers: %w", err)
	}

	return officers, nil
}

// GetAllOfficersByStation retrieves every officer posted at a station
func (r *OfficerRepository) GetAllOfficersByStation(stationID int64) ([]models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE station_id = ? ORDER BY officer_id ASC`

	rows, err := r.db.Query(query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query station officers: %w", err)
	}
	defer rows.Close()

	var officers []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := scanOfficer(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating officers: %w", err)
	}

	return officers, nil
}

// GetAllOfficers retrieves every officer
func (r *OfficerRepository) GetAllOfficers() ([]models.Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers ORDER BY officer_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query officers: %w", err)
	}
	defer rows.Close()

	var officers []models.Officer
	for rows.Next() {
		var o models.Officer
		if err := scanOfficer(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating officers: %w", err)
	}

	return officers, nil
}

// UpdateOfficer updates an officer's profile and station binding
func (r *OfficerRepository) UpdateOfficer(officer *models.Officer) error {
	query := `
		UPDATE officers
		SET station_id = ?, name = ?, email = ?, phone = ?, updated_at = NOW()
		WHERE officer_id = ?
	`

	result, err := r.db.Exec(
		query,
		officer.StationID,
		officer.Name,
		officer.Email,
		officer.Phone,
		officer.OfficerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update officer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("officer not found")
	}
	return nil
}

// DeleteOfficer removes an officer account
func (r *OfficerRepository) DeleteOfficer(officerID int64) error {
	result, err := r.db.Exec(`DELETE FROM officers WHERE officer_id = ?`, officerID)
	if err != nil {
		return fmt.Errorf("failed to delete officer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("officer not found")
	}
	return nil
}
