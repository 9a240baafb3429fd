package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"suraksha/middleware"
	"suraksha/models"

	"github.com/gorilla/mux"
)

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	response := models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	}
	respondWithJSON(w, statusCode, response)
}

// getPrincipal retrieves the authenticated principal set by auth middleware
func getPrincipal(r *http.Request) (*models.Principal, error) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("principal not found in context")
	}
	return principal, nil
}

// parseIDParam parses a numeric path parameter
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// respondWithServiceError maps service-layer errors onto HTTP statuses.
// Repositories return bare sentinel messages for the conditions callers
// branch on.
func respondWithServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case msg == "alert not found",
		msg == "station not found",
		msg == "officer not found",
		msg == "complaint not found",
		msg == "thread not found",
		msg == "trip not found",
		msg == "user not found",
		msg == "guardian not found":
		respondWithError(w, http.StatusNotFound, "Not found", msg)
	case msg == "forbidden":
		respondWithError(w, http.StatusForbidden, "Forbidden", "You do not have access to this resource")
	case msg == "invalid credentials":
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", msg)
	case msg == "station has assigned officers":
		respondWithError(w, http.StatusConflict, "Conflict", msg)
	case msg == "guardian limit reached",
		msg == "invalid priority",
		msg == "invalid status",
		msg == "officer does not belong to the complaint station",
		msg == "trip no longer open",
		msg == "trips are not compatible",
		msg == "cannot match a trip with your own trip",
		strings.HasPrefix(msg, "trip is not "),
		strings.HasPrefix(msg, "alert is not "):
		respondWithError(w, http.StatusBadRequest, "Validation error", msg)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal error", msg)
	}
}
