package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"suraksha/models"
	"time"
)

// Sender delivers a single notification over one channel. Queueing and
// retry scheduling live in the service layer; a Sender only attempts the
// send it is given.
type Sender interface {
	Send(ctx context.Context, n *models.Notification) error
}

// ErrUnsupportedChannel is returned when no sender is registered for a
// notification's channel.
var ErrUnsupportedChannel = errors.New("unsupported notification channel")

const (
	sendGridURL    = "https://api.sendgrid.com/v3/mail/send"
	sendAttempts   = 3
	defaultFrom    = "alerts@suraksha.app"
	defaultFromTag = "Suraksha"
)

// EmailSender delivers guardian alert emails through the SendGrid REST
// API. With no SENDGRID_API_KEY configured it runs dry: sends succeed
// without delivery, so local setups never need real credentials.
type EmailSender struct {
	apiKey    string
	fromEmail string
	fromName  string
	client    *http.Client
}

// NewEmailSender builds an email sender from SENDGRID_* env variables.
func NewEmailSender() *EmailSender {
	s := &EmailSender{
		apiKey:    os.Getenv("SENDGRID_API_KEY"),
		fromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		fromName:  os.Getenv("SENDGRID_FROM_NAME"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	if s.fromEmail == "" {
		s.fromEmail = defaultFrom
	}
	if s.fromName == "" {
		s.fromName = defaultFromTag
	}
	return s
}

func (s *EmailSender) Send(ctx context.Context, n *models.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("notification %d has no recipient email", n.NotificationID)
	}
	if s.apiKey == "" {
		log.Printf("[EMAIL] dry run, no API key: to=%s subject=%q", n.Recipient, n.Subject.String)
		return nil
	}

	payload, err := json.Marshal(s.mailPayload(n))
	if err != nil {
		return fmt.Errorf("failed to build mail payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < sendAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
		lastErr = s.post(ctx, payload)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (s *EmailSender) mailPayload(n *models.Notification) map[string]interface{} {
	return map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]interface{}{{"email": n.Recipient}}},
		},
		"from":    map[string]string{"email": s.fromEmail, "name": s.fromName},
		"subject": n.Subject.String,
		"content": []map[string]string{{"type": "text/plain", "value": n.Body}},
	}
}

func (s *EmailSender) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SMSSender delivers guardian alert texts. No SMS gateway is wired yet;
// sends are logged and acknowledged so the queue drains cleanly.
// TODO: wire an SMS gateway once one is provisioned.
type SMSSender struct{}

func NewSMSSender() *SMSSender {
	return &SMSSender{}
}

func (s *SMSSender) Send(ctx context.Context, n *models.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("notification %d has no recipient phone", n.NotificationID)
	}
	log.Printf("[SMS] no gateway configured: to=%s len=%d", n.Recipient, len(n.Body))
	return nil
}
