package handler

import (
	"encoding/json"
	"net/http"
	"suraksha/models"
	"suraksha/service"
)

// UserHandler handles HTTP requests for user profiles and guardians
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	user, err := h.service.GetUser(principal.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateLocation handles PUT /api/v1/users/me/location
func (h *UserHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	var req models.UpdateLocationRequest
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

	if err := h.service.UpdateLocation(principal.UserID, *req.Lat, *req.Lng); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Location updated",
	})
}

// GetGuardians handles GET /api/v1/users/guardians
func (h *UserHandler) GetGuardians(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	guardians, err := h.service.GetGuardians(principal.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if guardians == nil {
		guardians = []models.Guardian{}
	}
	respondWithJSON(w, http.StatusOK, guardians)
}

// AddGuardian handles POST /api/v1/users/guardians
func (h *UserHandler) AddGuardian(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	req, ok := decodeGuardianRequest(w, r)
	if !ok {
		return
	}

	guardian, err := h.service.AddGuardian(principal.UserID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, guardian)
}

// UpdateGuardian handles PUT /api/v1/users/guardians/{id}
func (h *UserHandler) UpdateGuardian(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	guardianID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	req, ok := decodeGuardianRequest(w, r)
	if !ok {
		return
	}

	guardian, err := h.service.UpdateGuardian(principal.UserID, guardianID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, guardian)
}

// DeleteGuardian handles DELETE /api/v1/users/guardians/{id}
func (h *UserHandler) DeleteGuardian(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	guardianID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if err := h.service.DeleteGuardian(principal.UserID, guardianID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Guardian removed",
	})
}

func decodeGuardianRequest(w http.ResponseWriter, r *http.Request) (*models.GuardianRequest, bool) {
	var req models.GuardianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return nil, false
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Name is required")
		return nil, false
	}
	if req.Phone == "" && req.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "A phone number or email is required")
		return nil, false
	}
	return &req, true
}
