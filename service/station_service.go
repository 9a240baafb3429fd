package service

import (
	"fmt"
	"suraksha/models"
	"suraksha/repository"
	"suraksha/utils"
)

// StationService handles admin CRUD for stations and officers, plus the
// public nearby-station lookup. Writes invalidate the locator cache.
type StationService struct {
	stationRepo *repository.StationRepository
	officerRepo *repository.OfficerRepository
	locator     *StationLocator
}

// NewStationService creates a new station service
func NewStationService(
	stationRepo *repository.StationRepository,
	officerRepo *repository.OfficerRepository,
	locator *StationLocator,
) *StationService {
	return &StationService{
		stationRepo: stationRepo,
		officerRepo: officerRepo,
		locator:     locator,
	}
}

// CreateStation registers a new police station
func (s *StationService) CreateStation(req *models.StationRequest) (*models.Station, error) {
	station := &models.Station{
		Name:     req.Name,
		Area:     req.Area,
		City:     req.City,
		Helpline: req.Helpline,
		Location: models.GeoPoint{Longitude: *req.Lng, Latitude: *req.Lat},
	}
	if err := s.stationRepo.CreateStation(station); err != nil {
		return nil, err
	}
	s.locator.Invalidate()
	return station, nil
}

// GetStation loads a station by ID
func (s *StationService) GetStation(stationID int64) (*models.Station, error) {
	return s.stationRepo.GetStationByID(stationID)
}

// GetAllStations lists every registered station
func (s *StationService) GetAllStations() ([]models.Station, error) {
	return s.stationRepo.GetAllStations()
}

// UpdateStation updates a station's details
func (s *StationService) UpdateStation(stationID int64, req *models.StationRequest) (*models.Station, error) {
	station := &models.Station{
		StationID: stationID,
		Name:      req.Name,
		Area:      req.Area,
		City:      req.City,
		Helpline:  req.Helpline,
		Location:  models.GeoPoint{Longitude: *req.Lng, Latitude: *req.Lat},
	}
	if err := s.stationRepo.UpdateStation(station); err != nil {
		return nil, err
	}
	s.locator.Invalidate()
	return station, nil
}

// DeleteStation removes a station. Stations with assigned officers are
// rejected by the repository.
func (s *StationService) DeleteStation(stationID int64) error {
	if err := s.stationRepo.DeleteStation(stationID); err != nil {
		return err
	}
	s.locator.Invalidate()
	return nil
}

// NearbyStations lists stations around a point, nearest first, with
// human-readable distances.
func (s *StationService) NearbyStations(lat, lng float64) ([]models.NearbyStation, error) {
	return s.locator.NearbyStations(lat, lng)
}

// CreateOfficer registers a new officer at a station
func (s *StationService) CreateOfficer(req *models.OfficerRequest) (*models.Officer, error) {
	if _, err := s.stationRepo.GetStationByID(req.StationID); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	officer := &models.Officer{
		StationID:    req.StationID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if err := s.officerRepo.CreateOfficer(officer); err != nil {
		return nil, err
	}
	return officer, nil
}

// GetOfficer loads an officer by ID
func (s *StationService) GetOfficer(officerID int64) (*models.Officer, error) {
	return s.officerRepo.GetOfficerByID(officerID)
}

// GetStationOfficers lists the officers posted at a station
func (s *StationService) GetStationOfficers(stationID int64) ([]models.Officer, error) {
	if _, err := s.stationRepo.GetStationByID(stationID); err != nil {
		return nil, err
	}
	return s.officerRepo.GetAllOfficersByStation(stationID)
}

// GetAllOfficers lists every registered officer
func (s *StationService) GetAllOfficers() ([]models.Officer, error) {
	return s.officerRepo.GetAllOfficers()
}

// UpdateOfficer updates an officer's details and posting
func (s *StationService) UpdateOfficer(officerID int64, req *models.OfficerRequest) (*models.Officer, error) {
	if _, err := s.stationRepo.GetStationByID(req.StationID); err != nil {
		return nil, err
	}

	officer := &models.Officer{
		OfficerID: officerID,
		StationID: req.StationID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.officerRepo.UpdateOfficer(officer); err != nil {
		return nil, err
	}
	return s.officerRepo.GetOfficerByID(officerID)
}

// DeleteOfficer removes an officer
func (s *StationService) DeleteOfficer(officerID int64) error {
	return s.officerRepo.DeleteOfficer(officerID)
}
