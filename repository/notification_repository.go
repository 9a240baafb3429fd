package repository

import (
	"database/sql"
	"fmt"
	"suraksha/models"
	"time"
)

// NotificationRepository handles database operations for the notification queue
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotification creates a new notification record
func (r *NotificationRepository) CreateNotification(notification *models.Notification) error {
	query := `
		INSERT INTO notifications_log (
			entity_type, entity_id, channel, recipient,
			subject, body, status, retry_count, max_retries, next_retry_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		notification.EntityType,
		notification.EntityID,
		notification.Channel,
		notification.Recipient,
		notification.Subject,
		notification.Body,
		notification.Status,
		notification.RetryCount,
		notification.MaxRetries,
		notification.NextRetryAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	notificationID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification ID: %w", err)
	}

	notification.NotificationID = notificationID
	return nil
}

// GetPendingNotifications retrieves pending notifications ready to be sent
func (r *NotificationRepository) GetPendingNotifications(limit int) ([]models.Notification, error) {
	query := `
		SELECT
			notification_id, entity_type, entity_id, channel, recipient,
			subject, body, status, retry_count, max_retries,
			next_retry_at, sent_at, failed_at, error_message,
			created_at, updated_at
		FROM notifications_log
		WHERE status IN ('pending', 'retrying')
			AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		ORDER BY created_at ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.NotificationID,
			&n.EntityType,
			&n.EntityID,
			&n.Channel,
			&n.Recipient,
			&n.Subject,
			&n.Body,
			&n.Status,
			&n.RetryCount,
			&n.MaxRetries,
			&n.NextRetryAt,
			&n.SentAt,
			&n.FailedAt,
			&n.ErrorMessage,
			&n.CreatedAt,
			&n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkSent marks a notification as successfully sent
func (r *NotificationRepository) MarkSent(notificationID int64) error {
	query := `
		UPDATE notifications_log
		SET status = ?, sent_at = NOW(), updated_at = NOW(), error_message = NULL
		WHERE notification_id = ?
	`

	_, err := r.db.Exec(query, models.NotificationStatusSent, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkFailed marks a notification as terminally failed
func (r *NotificationRepository) MarkFailed(notificationID int64, errorMessage string) error {
	query := `
		UPDATE notifications_log
		SET status = ?, failed_at = NOW(), updated_at = NOW(), error_message = ?
		WHERE notification_id = ?
	`

	_, err := r.db.Exec(query, models.NotificationStatusFailed, errorMessage, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}

// ScheduleRetry schedules a retry for a failed notification
func (r *NotificationRepository) ScheduleRetry(notificationID int64, nextRetryAt time.Time, errorMessage string) error {
	query := `
		UPDATE notifications_log
		SET status = 'retrying',
			retry_count = retry_count + 1,
			next_retry_at = ?,
			error_message = ?,
			updated_at = NOW()
		WHERE notification_id = ?
	`

	_, err := r.db.Exec(query, nextRetryAt, errorMessage, notificationID)
	if err != nil {
		return fmt.Errorf("failed to schedule retry: %w", err)
	}
	return nil
}
