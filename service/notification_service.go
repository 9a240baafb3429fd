package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"suraksha/models"
	"suraksha/notification"
	"suraksha/repository"
	"time"
)

// NotificationService queues notifications and processes them with retry
// and exponential backoff. The notifications_log table is the queue; the
// background worker drains it.
type NotificationService struct {
	repo    *repository.NotificationRepository
	senders map[models.NotificationChannel]notification.Sender
	config  *models.RetryConfig
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo *repository.NotificationRepository,
	config *models.RetryConfig,
) *NotificationService {
	if config == nil {
		config = models.DefaultRetryConfig()
	}

	senders := make(map[models.NotificationChannel]notification.Sender)
	senders[models.ChannelEmail] = notification.NewEmailSender()
	senders[models.ChannelSMS] = notification.NewSMSSender()

	return &NotificationService{
		repo:    repo,
		senders: senders,
		config:  config,
	}
}

// QueueNotification records a notification in the queue for the worker.
func (s *NotificationService) QueueNotification(req *models.NotificationRequest) (*models.Notification, error) {
	maxRetries := s.config.DefaultMaxRetries
	if req.MaxRetries != nil {
		maxRetries = *req.MaxRetries
	}

	n := &models.Notification{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Channel:    req.Channel,
		Recipient:  req.Recipient,
		Body:       req.Body,
		Status:     models.NotificationStatusPending,
		RetryCount: 0,
		MaxRetries: maxRetries,
	}
	if req.Subject != nil {
		n.Subject = sql.NullString{String: *req.Subject, Valid: true}
	}

	if err := s.repo.CreateNotification(n); err != nil {
		return nil, fmt.Errorf("failed to queue notification: %w", err)
	}
	return n, nil
}

// SendGuardianAlert queues a guardian email for an SOS alert and attempts
// the send inline. On inline failure the queued row stays pending and the
// worker retries it; the returned error lets the trigger flow report the
// degraded state.
func (s *NotificationService) SendGuardianAlert(alert *models.Alert, user *models.User, guardian *models.Guardian) error {
	subject := fmt.Sprintf("SOS alert from %s", user.Name)
	body := fmt.Sprintf(
		"%s (phone %s) has triggered an SOS alert.\n\nLocation: lat %f, lng %f\nAlert number: %s\n\nPlease try to reach them immediately.",
		user.Name, user.Phone,
		alert.Location.Latitude, alert.Location.Longitude,
		alert.AlertNumber,
	)

	n, err := s.QueueNotification(&models.NotificationRequest{
		EntityType: "alert",
		EntityID:   alert.AlertID,
		Channel:    models.ChannelEmail,
		Recipient:  guardian.Email,
		Subject:    &subject,
		Body:       body,
	})
	if err != nil {
		return err
	}

	return s.ProcessNotification(context.Background(), n)
}

// GetPendingNotifications retrieves queued notifications ready to send
func (s *NotificationService) GetPendingNotifications(limit int) ([]models.Notification, error) {
	return s.repo.GetPendingNotifications(limit)
}

// ProcessNotification attempts a single send, marking the record sent,
// retrying, or failed according to the retry budget.
func (s *NotificationService) ProcessNotification(ctx context.Context, n *models.Notification) error {
	sender, ok := s.senders[n.Channel]
	if !ok {
		msg := fmt.Sprintf("unsupported channel: %s", n.Channel)
		if err := s.repo.MarkFailed(n.NotificationID, msg); err != nil {
			return err
		}
		n.Status = models.NotificationStatusFailed
		return notification.ErrUnsupportedChannel
	}

	sendErr := sender.Send(ctx, n)
	if sendErr == nil {
		if err := s.repo.MarkSent(n.NotificationID); err != nil {
			return err
		}
		n.Status = models.NotificationStatusSent
		return nil
	}

	if n.RetryCount >= n.MaxRetries {
		if err := s.repo.MarkFailed(n.NotificationID, sendErr.Error()); err != nil {
			return err
		}
		n.Status = models.NotificationStatusFailed
		return sendErr
	}

	nextRetryAt := time.Now().Add(s.RetryDelay(n.RetryCount))
	if err := s.repo.ScheduleRetry(n.NotificationID, nextRetryAt, sendErr.Error()); err != nil {
		return err
	}
	n.Status = models.NotificationStatusRetrying
	return sendErr
}

// RetryDelay returns the backoff delay before the given retry attempt
// (attempt 0 = first retry), capped at the configured maximum.
func (s *NotificationService) RetryDelay(attempt int) time.Duration {
	delay := float64(s.config.InitialRetryDelay) * math.Pow(s.config.BackoffMultiplier, float64(attempt))
	if delay > float64(s.config.MaxRetryDelay) {
		return s.config.MaxRetryDelay
	}
	return time.Duration(delay)
}

// BatchSize exposes the worker batch size from config
func (s *NotificationService) BatchSize() int {
	return s.config.WorkerBatchSize
}
