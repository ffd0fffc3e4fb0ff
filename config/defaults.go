package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Defaults returns the values used for every key left empty by the config
// file and the environment.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			TimeoutSeconds: 30,
			Environment:    EnvDevelopment,
		},
		Email: EmailConfig{
			Provider:       ProviderSendGrid,
			From:           DefaultSender,
			TimeoutSeconds: 15,
			SendGrid: SendGridConfig{
				Host: "https://api.sendgrid.com",
			},
			SMTP: SMTPConfig{
				Port: 587,
			},
		},
		Contact: ContactConfig{
			IdempotencyTTLSeconds: 600,
			DefaultRegion:         "US",
			RateLimit: RateLimitConfig{
				Max:           5,
				WindowSeconds: 60,
			},
		},
		Observability: ObservabilityConfig{
			ServiceName:    "portfolio_backend",
			ServiceVersion: "dev",
			Metrics: MetricsConfig{
				Path: "/metrics",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// ApplyDefaults fills zero-valued fields of cfg from Defaults.
func ApplyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("merge config defaults: %w", err)
	}
	return nil
}
