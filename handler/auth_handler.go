package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"suraksha/models"
	"suraksha/service"
)

// AuthHandler handles registration and login for citizens and officers
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Name is required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondWithError(w, http.StatusBadRequest, "Validation error", "A valid email is required")
		return
	}
	if len(req.Password) < 8 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Password must be at least 8 characters")
		return
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLoginRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.userService.Login(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// PoliceLogin handles POST /api/v1/auth/police/login
func (h *AuthHandler) PoliceLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLoginRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.userService.PoliceLogin(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func decodeLoginRequest(w http.ResponseWriter, r *http.Request) (*models.LoginRequest, bool) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return nil, false
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Email and password are required")
		return nil, false
	}
	return &req, true
}
