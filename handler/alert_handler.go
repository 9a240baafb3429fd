package handler

import (
	"encoding/json"
	"net/http"
	"suraksha/models"
	"suraksha/service"
)

// AlertHandler handles HTTP requests for SOS alerts
type AlertHandler struct {
	service *service.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(svc *service.AlertService) *AlertHandler {
	return &AlertHandler{service: svc}
}

// TriggerSOS handles POST /api/v1/sos/alert
func (h *AlertHandler) TriggerSOS(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	var req models.TriggerSOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", "GPS coordinates (lat and lng) are required")
		return
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Coordinates out of range")
		return
	}

	resp, err := h.service.TriggerSOS(principal.UserID, *req.Lat, *req.Lng)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetMyAlerts handles GET /api/v1/sos/alerts
func (h *AlertHandler) GetMyAlerts(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	alerts, err := h.service.GetUserAlerts(principal.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	respondWithJSON(w, http.StatusOK, alerts)
}

// GetAlert handles GET /api/v1/sos/alerts/{id}
func (h *AlertHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	alertID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	view, err := h.service.GetAlert(alertID, *principal)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// AssignOfficers handles PUT /api/v1/sos/alerts/{id}/assign-officers
func (h *AlertHandler) AssignOfficers(w http.ResponseWriter, r *http.Request) {
	alertID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var req models.AssignOfficersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.StationID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "stationId is required")
		return
	}

	resp, err := h.service.AssignOfficers(alertID, req.StationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if !resp.Success {
		respondWithJSON(w, http.StatusBadRequest, resp)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// MarkInProgress handles PUT /api/v1/sos/alerts/{id}/progress
func (h *AlertHandler) MarkInProgress(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(alertID int64, principal models.Principal) error {
		return h.service.MarkInProgress(alertID, principal)
	}, "Alert marked in progress")
}

// ResolveAlert handles PUT /api/v1/sos/alerts/{id}/resolve
func (h *AlertHandler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(alertID int64, principal models.Principal) error {
		return h.service.ResolveAlert(alertID, principal)
	}, "Alert resolved")
}

// CancelAlert handles PUT /api/v1/sos/alerts/{id}/cancel
func (h *AlertHandler) CancelAlert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(alertID int64, principal models.Principal) error {
		return h.service.CancelAlert(alertID, principal)
	}, "Alert cancelled")
}

func (h *AlertHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(int64, models.Principal) error,
	message string,
) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	alertID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if err := apply(alertID, *principal); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
