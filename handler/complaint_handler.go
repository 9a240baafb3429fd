package handler

import (
	"encoding/json"
	"net/http"
	"suraksha/models"
	"suraksha/service"
)

// ComplaintHandler handles HTTP requests for complaints
type ComplaintHandler struct {
	service *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(svc *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// CreateComplaint handles POST /api/v1/complaints
func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.StationID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "stationId is required")
		return
	}
	if req.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Title is required")
		return
	}
	if req.Description == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Description is required")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", "GPS coordinates (lat and lng) are required")
		return
	}

	complaint, err := h.service.CreateComplaint(principal.UserID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, complaint)
}

// GetMyComplaints handles GET /api/v1/complaints
func (h *ComplaintHandler) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	complaints, err := h.service.GetUserComplaints(principal.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	respondWithJSON(w, http.StatusOK, complaints)
}

// GetComplaint handles GET /api/v1/complaints/{id}
func (h *ComplaintHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	complaintID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	complaint, err := h.service.GetComplaint(principal, complaintID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// GetStationComplaints handles GET /api/v1/police/complaints
func (h *ComplaintHandler) GetStationComplaints(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	complaints, err := h.service.GetStationComplaints(principal.StationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	respondWithJSON(w, http.StatusOK, complaints)
}

// UpdateStatus handles PUT /api/v1/complaints/{id}/status
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	complaintID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var req models.UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Status == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Status is required")
		return
	}

	complaint, err := h.service.UpdateStatus(principal, complaintID, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// AssignOfficer handles PUT /api/v1/complaints/{id}/assign
func (h *ComplaintHandler) AssignOfficer(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	complaintID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var req models.AssignComplaintOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.OfficerID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "officerId is required")
		return
	}

	complaint, err := h.service.AssignOfficer(principal, complaintID, req.OfficerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}
