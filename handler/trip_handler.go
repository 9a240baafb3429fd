package handler

import (
	"encoding/json"
	"net/http"
	"suraksha/models"
	"suraksha/service"
)

// TripHandler handles HTTP requests for travel-buddy trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{service: svc}
}

// CreateTrip handles POST /api/v1/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	var req models.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Origin == nil || req.Destination == nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Origin and destination are required")
		return
	}
	if req.DepartureAt.IsZero() {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Departure time is required")
		return
	}

	trip, err := h.service.CreateTrip(principal.UserID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, trip)
}

// GetMyTrips handles GET /api/v1/trips
func (h *TripHandler) GetMyTrips(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	trips, err := h.service.GetUserTrips(principal.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	respondWithJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /api/v1/trips/{id}
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	trip, err := h.service.GetTrip(principal, tripID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, trip)
}

// GetMatches handles GET /api/v1/trips/{id}/matches
func (h *TripHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	matches, err := h.service.FindMatches(principal.UserID, tripID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if matches == nil {
		matches = []models.Trip{}
	}
	respondWithJSON(w, http.StatusOK, matches)
}

// JoinTrip handles POST /api/v1/trips/{id}/join
func (h *TripHandler) JoinTrip(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var req models.JoinTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.BuddyTripID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "buddyTripId is required")
		return
	}

	trip, err := h.service.JoinTrip(principal.UserID, tripID, req.BuddyTripID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, trip)
}

// CompleteTrip handles PUT /api/v1/trips/{id}/complete
func (h *TripHandler) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.CompleteTrip)
}

// CancelTrip handles PUT /api/v1/trips/{id}/cancel
func (h *TripHandler) CancelTrip(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.CancelTrip)
}

func (h *TripHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(int64, int64) (*models.Trip, error),
) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	trip, err := apply(principal.UserID, tripID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, trip)
}
