package worker

import (
	"context"
	"log"
	"suraksha/models"
	"suraksha/service"
	"time"
)

// NotificationWorker is a background worker that drains the notification
// queue and retries failed sends.
type NotificationWorker struct {
	notificationService *service.NotificationService
	interval            time.Duration
	stopChan            chan struct{}
	running             bool
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(
	notificationService *service.NotificationService,
	interval time.Duration,
) *NotificationWorker {
	return &NotificationWorker{
		notificationService: notificationService,
		interval:            interval,
		stopChan:            make(chan struct{}),
		running:             false,
	}
}

// Start starts the notification worker in a separate goroutine
func (w *NotificationWorker) Start() {
	if w.running {
		log.Println("Notification worker is already running")
		return
	}

	w.running = true
	log.Printf("Notification worker started (interval: %v)", w.interval)

	go w.run()
}

// Stop stops the notification worker
func (w *NotificationWorker) Stop() {
	if !w.running {
		return
	}

	log.Println("Stopping notification worker...")
	close(w.stopChan)
	w.running = false
	log.Println("Notification worker stopped")
}

func (w *NotificationWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Process immediately on start
	w.processNotifications()

	for {
		select {
		case <-ticker.C:
			w.processNotifications()
		case <-w.stopChan:
			return
		}
	}
}

// processNotifications drains one batch of due notifications. Idempotent.
func (w *NotificationWorker) processNotifications() {
	notifications, err := w.notificationService.GetPendingNotifications(w.notificationService.BatchSize())
	if err != nil {
		log.Printf("Error getting pending notifications: %v", err)
		return
	}
	if len(notifications) == 0 {
		return
	}

	log.Printf("Processing %d notifications...", len(notifications))

	ctx := context.Background()
	sentCount := 0
	retryCount := 0
	failedCount := 0

	for _, notification := range notifications {
		err := w.notificationService.ProcessNotification(ctx, &notification)
		switch {
		case err == nil:
			sentCount++
		case notification.Status == models.NotificationStatusRetrying:
			retryCount++
			log.Printf("Notification #%d scheduled for retry: %v", notification.NotificationID, err)
		default:
			failedCount++
			log.Printf("Notification #%d failed permanently: %v", notification.NotificationID, err)
		}
	}

	log.Printf("Notification batch done: %d sent, %d retrying, %d failed", sentCount, retryCount, failedCount)
}
