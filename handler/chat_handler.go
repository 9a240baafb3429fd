package handler

import (
	"encoding/json"
	"net/http"
	"suraksha/models"
	"suraksha/service"
)

// ChatHandler handles HTTP requests for user-officer chat threads
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// CreateThread handles POST /api/v1/chats
func (h *ChatHandler) CreateThread(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	var req models.CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.OfficerID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "officerId is required")
		return
	}
	if req.Subject == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Subject is required")
		return
	}

	thread, err := h.service.CreateThread(principal.UserID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, thread)
}

// GetThreads handles GET /api/v1/chats
func (h *ChatHandler) GetThreads(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}

	threads, err := h.service.GetThreads(principal)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if threads == nil {
		threads = []models.ChatThread{}
	}
	respondWithJSON(w, http.StatusOK, threads)
}

// PostMessage handles POST /api/v1/chats/{id}/messages
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	threadID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.Body == "" {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Message body is required")
		return
	}

	message, err := h.service.PostMessage(principal, threadID, req.Body)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, message)
}

// GetMessages handles GET /api/v1/chats/{id}/messages
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Principal not found in context")
		return
	}
	threadID, err := parseIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	messages, err := h.service.GetMessages(principal, threadID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	respondWithJSON(w, http.StatusOK, messages)
}
