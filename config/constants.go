package config

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "PORTFOLIO"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"

	// DefaultSender is used when no verified sender identity is configured.
	DefaultSender = "noreply@balaportfolio.com"
)
