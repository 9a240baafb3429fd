package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"suraksha/models"
	"suraksha/service"
)

// StationHandler handles HTTP requests for police stations
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(svc *service.StationService) *StationHandler {
	return &StationHandler{service: svc}
}

// GetNearbyStations handles GET /api/v1/stations/nearby?lat=..&lng=..
func (h *StationHandler) GetNearbyStations(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Query parameters lat and lng are required")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Coordinates out of range")
		return
	}

	stations, err := h.service.NearbyStations(lat, lng)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if stations == nil {
		stations = []models.NearbyStation{}
	}
	respondWithJSON(w, http.StatusOK, stations)
}

// GetAllStations handles GET /api/v1/stations
func (h *StationHandler) GetAllStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.service.GetAllStations()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}
	respondWithJSON(w, http.StatusOK, stations)
}

// GetStation handles GET /api/v1/stations/{id}
func (h *StationHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	station, err := h.service.GetStation(stationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, station)
}

// CreateStation handles POST /api/v1/admin/stations
func (h *StationHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeStationRequest(w, r)
	if !ok {
		return
	}

	station, err := h.service.CreateStation(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, station)
}

// UpdateStation handles PUT /api/v1/admin/stations/{id}
func (h *StationHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	req, ok := decodeStationRequest(w, r)
	if !ok {
		return
	}

	station, err := h.service.UpdateStation(stationID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, station)
}

// DeleteStation handles DELETE /api/v1/admin/stations/{id}
func (h *StationHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if err := h.service.DeleteStation(stationID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Station deleted",
	})
}

// GetStationOfficers handles GET /api/v1/stations/{id}/officers
func (h *StationHandler) GetStationOfficers(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	officers, err := h.service.GetStationOfficers(stationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if officers == nil {
		officers = []models.Officer{}
	}
	respondWithJSON(w, http.StatusOK, officers)
}

func decodeStationRequest(w http.ResponseWriter, r *http.Request) (*models.StationRequest, bool) {
	var req models.StationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return nil, false
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Name is required")
		return nil, false
	}
	if req.Lat == nil || req.Lng == nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", "GPS coordinates (lat and lng) are required")
		return nil, false
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Coordinates out of range")
		return nil, false
	}
	return &req, true
}
