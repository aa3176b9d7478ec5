// Package mail delivers contact form submissions to a transactional mail
// relay.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"aesthetic-cakes/internal/model"

	"github.com/rs/zerolog"
)

// ErrRelayRejected is returned when the relay answers with a non-OK status.
var ErrRelayRejected = errors.New("mail relay rejected message")

// Relay defines the interface for delivering a contact message.
type Relay interface {
	// Send delivers msg in a single attempt.
	Send(ctx context.Context, msg model.ContactMessage) error
}

// EmailJSConfig holds the credentials of an EmailJS-compatible relay.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// emailJSRequest is the body accepted by the EmailJS send endpoint.
type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Message   string `json:"message"`
}

// emailJSRelay posts messages to an EmailJS-compatible REST endpoint.
type emailJSRelay struct {
	config EmailJSConfig
	client *http.Client
	logger zerolog.Logger
}

// NewEmailJSRelay creates a relay that posts to config.Endpoint.
// A nil client gets a default client with config.Timeout.
func NewEmailJSRelay(config EmailJSConfig, client *http.Client, logger zerolog.Logger) Relay {
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	return &emailJSRelay{
		config: config,
		client: client,
		logger: logger.With().Str("component", "mail_relay").Logger(),
	}
}

// Send posts the message once. Any status other than 200 is a failure.
func (r *emailJSRelay) Send(ctx context.Context, msg model.ContactMessage) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:   r.config.ServiceID,
		TemplateID:  r.config.TemplateID,
		UserID:      r.config.PublicKey,
		AccessToken: r.config.PrivateKey,
		TemplateParams: templateParams{
			UserName:  msg.UserName,
			UserEmail: msg.UserEmail,
			Message:   msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error().Err(err).Msg("mail relay request failed")
		return fmt.Errorf("failed to reach mail relay: %w", err)
	}
	defer resp.Body.Close()

	// Relay answers with a short text body, kept for the log line.
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn().
			Int("status", resp.StatusCode).
			Str("detail", string(detail)).
			Msg("mail relay rejected message")
		return fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	}

	r.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("contact message relayed")

	return nil
}

// logRelay writes messages to the log instead of sending them. It is used
// when no relay credentials are configured.
type logRelay struct {
	logger zerolog.Logger
}

// NewLogRelay creates a relay that only logs.
func NewLogRelay(logger zerolog.Logger) Relay {
	return &logRelay{
		logger: logger.With().Str("component", "mail_relay").Logger(),
	}
}

func (r *logRelay) Send(ctx context.Context, msg model.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.logger.Info().
		Str("user_name", msg.UserName).
		Str("user_email", msg.UserEmail).
		Int("message_length", len(msg.Message)).
		Msg("mail relay not configured, contact message logged")

	return nil
}
