package models

import "time"

// SenderType identifies which side of a thread authored a message
type SenderType string

const (
	SenderUser   SenderType = "user"
	SenderPolice SenderType = "police"
)

// ChatThread is a conversation between a user and an officer
type ChatThread struct {
	ThreadID  int64     `db:"thread_id" json:"thread_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	OfficerID int64     `db:"officer_id" json:"officer_id"`
	Subject   string    `db:"subject" json:"subject"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ChatMessage is a single message inside a thread
type ChatMessage struct {
	MessageID int64      `db:"message_id" json:"message_id"`
	ThreadID  int64      `db:"thread_id" json:"thread_id"`
	SenderType SenderType `db:"sender_type" json:"sender_type"`
	SenderID  int64      `db:"sender_id" json:"sender_id"`
	Body      string     `db:"body" json:"body"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
