package email

import (
	"fmt"
	"log/slog"

	"github.com/Alijeyrad/portfolio_backend/config"
)

// NewFromCentral creates the Sender selected by central config.
func NewFromCentral(cfg config.EmailConfig, logger *slog.Logger) (Sender, error) {
	return New(FromCentralConfig(cfg), logger)
}

// New picks a Sender for cfg.Provider. Missing credentials are not an error
// here: the returned Sender reports ErrNotConfigured on every Send so the
// failure reaches the caller instead of stopping the process.
func New(cfg Config, logger *slog.Logger) (Sender, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Provider {
	case ProviderSendGrid, "":
		if cfg.SendGridAPIKey == DevelopmentAPIKey {
			logger.Warn("development SendGrid key configured, messages will be logged instead of sent")
			return NewLogSender(logger), nil
		}
		return NewSendGridClient(cfg), nil
	case ProviderSMTP:
		return NewSMTPClient(cfg), nil
	case ProviderLog:
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
