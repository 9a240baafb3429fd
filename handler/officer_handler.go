package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"suraksha/models"
	"suraksha/service"
)

// OfficerHandler handles admin HTTP requests for officer accounts
type OfficerHandler struct {
	service *service.StationService
}

// NewOfficerHandler creates a new officer handler
func NewOfficerHandler(svc *service.StationService) *OfficerHandler {
	return &OfficerHandler{service: svc}
}

// CreateOfficer handles POST /api/v1/admin/officers
func (h *OfficerHandler) CreateOfficer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeOfficerRequest(w, r, true)
	if !ok {
		return
	}

	officer, err := h.service.CreateOfficer(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, officer)
}

// GetAllOfficers handles GET /api/v1/admin/officers
func (h *OfficerHandler) GetAllOfficers(w http.ResponseWriter, r *http.Request) {
	officers, err := h.service.GetAllOfficers()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if officers == nil {
		officers = []models.Officer{}
	}
	respondWithJSON(w, http.StatusOK, officers)
}

// GetOfficer handles GET /api/v1/admin/officers/{id}
func (h *OfficerHandler) GetOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	officer, err := h.service.GetOfficer(officerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, officer)
}

// UpdateOfficer handles PUT /api/v1/admin/officers/{id}
func (h *OfficerHandler) UpdateOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	req, ok := decodeOfficerRequest(w, r, false)
	if !ok {
		return
	}

	officer, err := h.service.UpdateOfficer(officerID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, officer)
}

// DeleteOfficer handles DELETE /api/v1/admin/officers/{id}
func (h *OfficerHandler) DeleteOfficer(w http.ResponseWriter, r *http.Request) {
	officerID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if err := h.service.DeleteOfficer(officerID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Officer deleted",
	})
}

func decodeOfficerRequest(w http.ResponseWriter, r *http.Request, requirePassword bool) (*models.OfficerRequest, bool) {
	var req models.OfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return nil, false
	}
	if req.StationID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "stationId is required")
		return nil, false
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Name is required")
		return nil, false
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondWithError(w, http.StatusBadRequest, "Validation error", "A valid email is required")
		return nil, false
	}
	if requirePassword && len(req.Password) < 8 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Password must be at least 8 characters")
		return nil, false
	}
	return &req, true
}
