// Package email composes and delivers transactional mail through the Resend
// HTTP API. Delivery is best-effort: callers decide per send
// whether a failure is loud (degrades the response to a warning) or quiet
// (logged only).
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	resendEndpoint = "https://api.resend.com/emails"
	sendTimeout    = 30 * time.Second
)

// ErrNotConfigured indicates no API key was supplied.
var ErrNotConfigured = errors.New("email: provider not configured")

// Tag labels a message for provider-side analytics.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Message is one outbound transactional email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	Tags    []Tag    `json:"tags,omitempty"`
}

// Client hands a composed message to an email provider.
type Client interface {
	Send(ctx context.Context, message Message) error
}

// ResendClient delivers mail through the Resend REST API using raw HTTP,
// no SDK.
type ResendClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient constructs a client authenticated with the given API key.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: sendTimeout},
	}
}

// Send posts the message and treats any non-2xx response as an error.
func (c *ResendClient) Send(ctx context.Context, message Message) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("email: encode message: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("email: send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
	var apiError struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Message != "" {
		return fmt.Errorf("email: provider rejected send (status %d): %s", response.StatusCode, apiError.Message)
	}
	return fmt.Errorf("email: provider rejected send (status %d)", response.StatusCode)
}

// NopClient accepts every message without delivering it. Used when no API
// key is configured, so development environments exercise the full pipeline.
type NopClient struct {
	logger *zap.Logger
}

// NewNopClient constructs the no-op client.
func NewNopClient(logger *zap.Logger) *NopClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopClient{logger: logger}
}

// Send logs the would-be delivery and succeeds.
func (c *NopClient) Send(_ context.Context, message Message) error {
	c.logger.Debug("email delivery skipped, no provider configured",
		zap.Strings("to", message.To),
		zap.String("subject", message.Subject))
	return nil
}
