package models

import (
	"database/sql"
	"time"
)

// NotificationChannel represents the notification channel type
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
)

// NotificationStatus represents the status of a notification
type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusSent     NotificationStatus = "sent"
	NotificationStatusFailed   NotificationStatus = "failed"
	NotificationStatusRetrying NotificationStatus = "retrying"
)

// Notification represents a queued notification record
type Notification struct {
	NotificationID int64               `db:"notification_id" json:"notification_id"`
	EntityType     string              `db:"entity_type" json:"entity_type"` // e.g. "alert", "complaint"
	EntityID       int64               `db:"entity_id" json:"entity_id"`
	Channel        NotificationChannel `db:"channel" json:"channel"`
	Recipient      string              `db:"recipient" json:"recipient"` // email or phone number
	Subject        sql.NullString      `db:"subject" json:"subject"`
	Body           string              `db:"body" json:"body"`
	Status         NotificationStatus  `db:"status" json:"status"`
	RetryCount     int                 `db:"retry_count" json:"retry_count"`
	MaxRetries     int                 `db:"max_retries" json:"max_retries"`
	NextRetryAt    sql.NullTime        `db:"next_retry_at" json:"next_retry_at"`
	SentAt         sql.NullTime        `db:"sent_at" json:"sent_at"`
	FailedAt       sql.NullTime        `db:"failed_at" json:"failed_at"`
	ErrorMessage   sql.NullString      `db:"error_message" json:"error_message"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt      sql.NullTime        `db:"updated_at" json:"updated_at"`
}

// NotificationRequest represents a request to queue a notification
type NotificationRequest struct {
	EntityType string              `json:"entity_type"`
	EntityID   int64               `json:"entity_id"`
	Channel    NotificationChannel `json:"channel"`
	Recipient  string              `json:"recipient"`
	Subject    *string             `json:"subject,omitempty"`
	Body       string              `json:"body"`
	MaxRetries *int                `json:"max_retries,omitempty"`
}

// RetryConfig holds retry/backoff configuration for the notification worker
type RetryConfig struct {
	DefaultMaxRetries int
	InitialRetryDelay time.Duration
	MaxRetryDelay     time.Duration
	BackoffMultiplier float64
	WorkerBatchSize   int
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		DefaultMaxRetries: 3,
		InitialRetryDelay: 1 * time.Minute,
		MaxRetryDelay:     30 * time.Minute,
		BackoffMultiplier: 2.0,
		WorkerBatchSize:   100,
	}
}
