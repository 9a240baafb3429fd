package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
)

// StationRepository handles database operations for police stations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// CreateStation creates a new station
func (r *StationRepository) CreateStation(station *models.Station) error {
	query := `
		INSERT INTO stations (name, area, city, helpline, longitude, latitude)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		station.Name,
		station.Area,
		station.City,
		station.Helpline,
		station.Location.Longitude,
		station.Location.Latitude,
	)
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}

	stationID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get station ID: %w", err)
	}

	station.StationID = stationID
	return nil
}

// GetStationByID retrieves a station by ID
func (r *StationRepository) GetStationByID(stationID int64) (*models.Station, error) {
	query := `
		SELECT station_id, name, area, city, helpline, longitude, latitude,
			created_at, updated_at
		FROM stations
		WHERE station_id = ?
	`

	var station models.Station
	err := r.db.QueryRow(query, stationID).Scan(
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
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("station not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	return &station, nil
}

// GetAllStations retrieves every station, ordered by ID so equidistant
// candidates resolve the same way on every scan.
func (r *StationRepository) GetAllStations() ([]models.Station, error) {
	query := `
		SELECT station_id, name, area, city, helpline, longitude, latitude,
			created_at, updated_at
		FROM stations
		ORDER BY station_id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		err := rows.Scan(
			&s.StationID,
			&s.Name,
			&s.Area,
			&s.City,
			&s.Helpline,
			&s.Location.Longitude,
			&s.Location.Latitude,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}

// UpdateStation updates an existing station
func (r *StationRepository) UpdateStation(station *models.Station) error {
	query := `
		UPDATE stations
		SET name = ?, area = ?, city = ?, helpline = ?,
			longitude = ?, latitude = ?, updated_at = NOW()
		WHERE station_id = ?
	`

	result, err := r.db.Exec(
		query,
		station.Name,
		station.Area,
		station.City,
		station.Helpline,
		station.Location.Longitude,
		station.Location.Latitude,
		station.StationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("station not found")
	}
	return nil
}

// DeleteStation removes a station. Deletion is blocked while officers are
// still assigned to it.
func (r *StationRepository) DeleteStation(stationID int64) error {
	var officerCount int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM officers WHERE station_id = ?`, stationID).Scan(&officerCount)
	if err != nil {
		return fmt.Errorf("failed to count station officers: %w", err)
	}
	if officerCount > 0 {
		return fmt.Errorf("station has assigned officers")
	}

	result, err := r.db.Exec(`DELETE FROM stations WHERE station_id = ?`, stationID)
	if err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("station not found")
	}
	return nil
}
