package service

import (
	"testing"
	"time"

	"suraksha/models"
)

func TestRetryDelay(t *testing.T) {
	svc := NewNotificationService(nil, &models.RetryConfig{
		DefaultMaxRetries: 3,
		InitialRetryDelay: 1 * time.Minute,
		MaxRetryDelay:     30 * time.Minute,
		BackoffMultiplier: 2.0,
		WorkerBatchSize:   100,
	})

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Minute},
		{1, 2 * time.Minute},
		{2, 4 * time.Minute},
		{3, 8 * time.Minute},
		{4, 16 * time.Minute},
		{5, 30 * time.Minute}, // 32 minutes capped
		{10, 30 * time.Minute},
	}

	for _, c := range cases {
		if got := svc.RetryDelay(c.attempt); got != c.want {
			t.Errorf("RetryDelay(%d) = %v, want %v", c.attempt, got, c.want)
		}
	}
}

func TestNotificationServiceDefaults(t *testing.T) {
	svc := NewNotificationService(nil, nil)

	if svc.BatchSize() != 100 {
		t.Errorf("expected default batch size 100, got %d", svc.BatchSize())
	}
	if got := svc.RetryDelay(0); got != 1*time.Minute {
		t.Errorf("expected 1m initial delay, got %v", got)
	}
}
