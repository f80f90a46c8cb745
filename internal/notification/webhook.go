package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
)

// WebhookSender posts messages to an Incoming Webhook.
// Each message is sent exactly once; failures are returned, never retried.
type WebhookSender struct {
	url        string
	httpClient *http.Client
	marshal    func(v any) ([]byte, error)
	logger     *slog.Logger
}

// NewWebhookSender creates a sender for the given webhook URL.
func NewWebhookSender(url string, timeout time.Duration, log *slog.Logger) *WebhookSender {
	return &WebhookSender{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		marshal: json.Marshal,
		logger:  log,
	}
}

// Notify sends the message with a single POST.
func (s *WebhookSender) Notify(ctx context.Context, msg *Message) error {
	body, err := s.marshal(msg)
	if err != nil {
		return appErrors.ErrNotification("failed to marshal webhook payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return appErrors.ErrNotification("failed to create webhook request", err)
	}
	req.Header.Set(constants.ContentTypeHeader, constants.ContentTypeJSON)

	s.logger.Debug("calling external service", "context", map[string]string{
		"operation":   "Webhook.Post",
		"webhook_url": MaskURL(s.url),
	})

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return appErrors.ErrNotification("failed to send webhook notification to "+MaskURL(s.url), err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, constants.MaxLoggedResponseBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error("webhook returned error status",
			"status_code", resp.StatusCode,
			"response", string(respBody),
		)
		return appErrors.ErrNotification(fmt.Sprintf("webhook returned status %d", resp.StatusCode), nil)
	}

	s.logger.Debug("webhook notification sent",
		"status_code", resp.StatusCode,
		"response", string(respBody),
	)

	return nil
}

// MaskURL hides the secret path of a webhook URL for logging.
func MaskURL(url string) string {
	if len(url) > 50 {
		return url[:30] + "..." + url[len(url)-10:]
	}
	return url
}
