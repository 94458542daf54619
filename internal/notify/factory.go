package notify

import (
	"fmt"

	"github.com/alamintokder/bazar-sodai/internal/config"
)

// New creates a notifier based on configuration.
func New(cfg *config.NotifierConfig) (Notifier, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPNotifier(cfg.SMTP), nil
	case "telegram":
		return NewTelegramNotifier(cfg.Telegram)
	case "webhook":
		return NewWebhookNotifier(cfg.Webhook), nil
	case "mock":
		return NewMockNotifier(), nil
	default:
		return nil, fmt.Errorf("unsupported notifier provider: %s", cfg.Provider)
	}
}
