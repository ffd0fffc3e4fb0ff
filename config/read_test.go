package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Email.Provider != ProviderSendGrid {
		t.Errorf("Email.Provider = %q, want %q", cfg.Email.Provider, ProviderSendGrid)
	}
	if cfg.Email.From != DefaultSender {
		t.Errorf("Email.From = %q, want %q", cfg.Email.From, DefaultSender)
	}
	if cfg.Contact.IdempotencyTTLSeconds != 600 {
		t.Errorf("Contact.IdempotencyTTLSeconds = %d, want 600", cfg.Contact.IdempotencyTTLSeconds)
	}
}

func TestReadConfig_FileValuesWin(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
  environment: production
email:
  provider: smtp
  from: hello@example.com
  smtp:
    host: smtp.example.com
`)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Email.Provider != ProviderSMTP {
		t.Errorf("Email.Provider = %q, want smtp", cfg.Email.Provider)
	}
	if cfg.Email.SMTP.Host != "smtp.example.com" {
		t.Errorf("Email.SMTP.Host = %q", cfg.Email.SMTP.Host)
	}
	// Unset nested values still get their defaults.
	if cfg.Email.SMTP.Port != 587 {
		t.Errorf("Email.SMTP.Port = %d, want 587", cfg.Email.SMTP.Port)
	}
}

func TestReadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_EMAIL_PROVIDER", "log")
	t.Setenv("SENDGRID_API_KEY", "SG.legacy")
	t.Setenv("SENDGRID_VERIFIED_SENDER", "verified@example.com")

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Email.Provider != ProviderLog {
		t.Errorf("Email.Provider = %q, want log", cfg.Email.Provider)
	}
	if cfg.Email.SendGrid.APIKey != "SG.legacy" {
		t.Errorf("Email.SendGrid.APIKey = %q, want SG.legacy", cfg.Email.SendGrid.APIKey)
	}
	if cfg.Email.From != "verified@example.com" {
		t.Errorf("Email.From = %q, want verified@example.com", cfg.Email.From)
	}
}

func TestReadConfig_PrefixedEnvBeatsLegacy(t *testing.T) {
	t.Setenv("PORTFOLIO_EMAIL_SENDGRID_API_KEY", "SG.prefixed")
	t.Setenv("SENDGRID_API_KEY", "SG.legacy")

	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if cfg.Email.SendGrid.APIKey != "SG.prefixed" {
		t.Errorf("Email.SendGrid.APIKey = %q, want SG.prefixed", cfg.Email.SendGrid.APIKey)
	}
}

func TestReadConfig_RateLimit(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMax     int
		wantEnabled bool
	}{
		{name: "unset takes default", body: "server:\n  port: 8080\n", wantMax: 5, wantEnabled: true},
		{name: "zero takes default", body: "contact:\n  rate_limit:\n    max: 0\n", wantMax: 5, wantEnabled: true},
		{name: "negative disables", body: "contact:\n  rate_limit:\n    max: -1\n", wantMax: -1, wantEnabled: false},
		{name: "explicit value", body: "contact:\n  rate_limit:\n    max: 20\n", wantMax: 20, wantEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ReadConfig(writeConfig(t, tt.body))
			if err != nil {
				t.Fatalf("ReadConfig() error = %v", err)
			}
			rl := cfg.Contact.RateLimit
			if rl.Max != tt.wantMax {
				t.Errorf("Max = %d, want %d", rl.Max, tt.wantMax)
			}
			if rl.Enabled() != tt.wantEnabled {
				t.Errorf("Enabled() = %v, want %v", rl.Enabled(), tt.wantEnabled)
			}
			if rl.WindowSeconds != 60 {
				t.Errorf("WindowSeconds = %d, want 60", rl.WindowSeconds)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown provider", mutate: func(c *Config) { c.Email.Provider = "pigeon" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{
			name: "loki without endpoint",
			mutate: func(c *Config) {
				c.Logging.Output.Loki.Enabled = true
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}
