package service

import (
	"fmt"
	"suraksha/models"
	"suraksha/repository"
)

// ChatService handles threaded conversations between citizens and officers.
type ChatService struct {
	chatRepo    *repository.ChatRepository
	officerRepo *repository.OfficerRepository
}

// NewChatService creates a new chat service
func NewChatService(chatRepo *repository.ChatRepository, officerRepo *repository.OfficerRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo, officerRepo: officerRepo}
}

// CreateThread opens a thread between the calling citizen and an officer
func (s *ChatService) CreateThread(userID int64, req *models.CreateThreadRequest) (*models.ChatThread, error) {
	if _, err := s.officerRepo.GetOfficerByID(req.OfficerID); err != nil {
		return nil, err
	}

	thread := &models.ChatThread{
		UserID:    userID,
		OfficerID: req.OfficerID,
		Subject:   req.Subject,
	}
	if err := s.chatRepo.CreateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// GetThreads lists the threads the caller participates in
func (s *ChatService) GetThreads(principal *models.Principal) ([]models.ChatThread, error) {
	switch principal.Role {
	case models.RoleUser:
		return s.chatRepo.GetThreadsByUserID(principal.UserID)
	case models.RolePolice:
		return s.chatRepo.GetThreadsByOfficerID(principal.OfficerID)
	}
	return nil, fmt.Errorf("forbidden")
}

// PostMessage appends a message to a thread; participants only.
func (s *ChatService) PostMessage(principal *models.Principal, threadID int64, body string) (*models.ChatMessage, error) {
	thread, err := s.chatRepo.GetThreadByID(threadID)
	if err != nil {
		return nil, err
	}
	senderType, senderID, ok := threadSender(principal, thread)
	if !ok {
		return nil, fmt.Errorf("forbidden")
	}

	message := &models.ChatMessage{
		ThreadID:   threadID,
		SenderType: senderType,
		SenderID:   senderID,
		Body:       body,
	}
	if err := s.chatRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages lists a thread's messages oldest first; participants only.
func (s *ChatService) GetMessages(principal *models.Principal, threadID int64) ([]models.ChatMessage, error) {
	thread, err := s.chatRepo.GetThreadByID(threadID)
	if err != nil {
		return nil, err
	}
	if _, _, ok := threadSender(principal, thread); !ok {
		return nil, fmt.Errorf("forbidden")
	}
	return s.chatRepo.GetMessagesByThreadID(threadID)
}

// threadSender resolves the caller's role within a thread. Admins are not
// thread participants.
func threadSender(principal *models.Principal, thread *models.ChatThread) (models.SenderType, int64, bool) {
	switch principal.Role {
	case models.RoleUser:
		if principal.UserID == thread.UserID {
			return models.SenderUser, principal.UserID, true
		}
	case models.RolePolice:
		if principal.OfficerID == thread.OfficerID {
			return models.SenderPolice, principal.OfficerID, true
		}
	}
	return "", 0, false
}
