package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
)

// ChatRepository handles database operations for chat threads and messages
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateThread opens a new thread between a user and an officer
func (r *ChatRepository) CreateThread(thread *models.ChatThread) error {
	query := `
		INSERT INTO chat_threads (user_id, officer_id, subject)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, thread.UserID, thread.OfficerID, thread.Subject)
	if err != nil {
		return fmt.Errorf("failed to create chat thread: %w", err)
	}

	threadID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get thread ID: %w", err)
	}

	thread.ThreadID = threadID
	return nil
}

// GetThreadByID retrieves a thread by ID
func (r *ChatRepository) GetThreadByID(threadID int64) (*models.ChatThread, error) {
	query := `
		SELECT thread_id, user_id, officer_id, subject, created_at
		FROM chat_threads
		WHERE thread_id = ?
	`

	var thread models.ChatThread
	err := r.db.QueryRow(query, threadID).Scan(
		&thread.ThreadID,
		&thread.UserID,
		&thread.OfficerID,
		&thread.Subject,
		&thread.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("thread not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	return &thread, nil
}

// GetThreadsByUserID retrieves all threads a user participates in
func (r *ChatRepository) GetThreadsByUserID(userID int64) ([]models.ChatThread, error) {
	return r.queryThreads(`SELECT thread_id, user_id, officer_id, subject, created_at
		FROM chat_threads WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

// GetThreadsByOfficerID retrieves all threads an officer participates in
func (r *ChatRepository) GetThreadsByOfficerID(officerID int64) ([]models.ChatThread, error) {
	return r.queryThreads(`SELECT thread_id, user_id, officer_id, subject, created_at
		FROM chat_threads WHERE officer_id = ? ORDER BY created_at DESC`, officerID)
}

func (r *ChatRepository) queryThreads(query string, participantID int64) ([]models.ChatThread, error) {
	rows, err := r.db.Query(query, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	var threads []models.ChatThread
	for rows.Next() {
		var t models.ChatThread
		err := rows.Scan(&t.ThreadID, &t.UserID, &t.OfficerID, &t.Subject, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}

	return threads, nil
}

// CreateMessage appends a message to a thread
func (r *ChatRepository) CreateMessage(message *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (thread_id, sender_type, sender_id, body)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		message.ThreadID,
		message.SenderType,
		message.SenderID,
		message.Body,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	messageID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get message ID: %w", err)
	}

	message.MessageID = messageID
	return nil
}

// GetMessagesByThreadID retrieves a thread's messages, oldest first
func (r *ChatRepository) GetMessagesByThreadID(threadID int64) ([]models.ChatMessage, error) {
	query := `
		SELECT message_id, thread_id, sender_type, sender_id, body, created_at
		FROM chat_messages
		WHERE thread_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		err := rows.Scan(&m.MessageID, &m.ThreadID, &m.SenderType, &m.SenderID, &m.Body, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}
