package email

import (
	"strings"
	"time"

	"github.com/Alijeyrad/portfolio_backend/config"
)

const (
	ProviderSendGrid = config.ProviderSendGrid
	ProviderSMTP     = config.ProviderSMTP
	ProviderLog      = config.ProviderLog

	// DevelopmentAPIKey is a placeholder key that switches SendGrid delivery
	// into log-only mode.
	DevelopmentAPIKey = "dummy-key-for-development"

	defaultSendGridHost = "https://api.sendgrid.com"
)

// Config holds email service configuration
type Config struct {
	Provider string
	From     string

	TimeoutSeconds int

	// SendGrid settings
	SendGridAPIKey string
	SendGridHost   string

	// SMTP settings
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Provider:       ProviderSendGrid,
		From:           config.DefaultSender,
		TimeoutSeconds: 15,
		SendGridHost:   defaultSendGridHost,
		SMTPPort:       587,
	}
}

// Timeout returns the delivery timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Sender returns the configured verified sender, or the static fallback.
func (c Config) Sender() string {
	if s := strings.TrimSpace(c.From); s != "" {
		return s
	}
	return config.DefaultSender
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Provider:       strings.ToLower(c.Provider),
		From:           c.From,
		TimeoutSeconds: c.TimeoutSeconds,
		SendGridAPIKey: c.SendGrid.APIKey,
		SendGridHost:   c.SendGrid.Host,
		SMTPHost:       c.SMTP.Host,
		SMTPPort:       c.SMTP.Port,
		SMTPUsername:   c.SMTP.Username,
		SMTPPassword:   c.SMTP.Password,
		SMTPUseTLS:     c.SMTP.UseTLS,
	}
}
