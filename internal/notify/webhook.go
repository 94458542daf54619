package notify

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/alamintokder/bazar-sodai/internal/config"
)

// WebhookNotifier delivers order notifications as a JSON POST to a configured
// endpoint, for shops that route orders into their own tooling instead of a
// mailbox.
type WebhookNotifier struct {
	cfg    config.WebhookConfig
	client *resty.Client
}

type webhookPayload struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewWebhookNotifier(cfg config.WebhookConfig) *WebhookNotifier {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	if cfg.AuthToken != "" {
		client.SetAuthToken(cfg.AuthToken)
	}

	return &WebhookNotifier{cfg: cfg, client: client}
}

func (n *WebhookNotifier) Name() string {
	return "webhook"
}

func (n *WebhookNotifier) Send(ctx context.Context, subject, body string) error {
	if n.cfg.URL == "" {
		return fmt.Errorf("%w: webhook url is required", ErrNotConfigured)
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{Subject: subject, Body: body}).
		Post(n.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return nil
}

// Compile-time interface check
var _ Notifier = (*WebhookNotifier)(nil)
