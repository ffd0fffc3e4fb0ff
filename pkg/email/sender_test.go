package email

import (
	"context"
	"errors"
	"testing"
)

func TestNew_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		provider string
		wantErr  bool
	}{
		{name: "sendgrid", cfg: Config{Provider: ProviderSendGrid, SendGridAPIKey: "SG.x"}, provider: ProviderSendGrid},
		{name: "empty defaults to sendgrid", cfg: Config{}, provider: ProviderSendGrid},
		{name: "development key logs", cfg: Config{Provider: ProviderSendGrid, SendGridAPIKey: DevelopmentAPIKey}, provider: ProviderLog},
		{name: "smtp", cfg: Config{Provider: ProviderSMTP}, provider: ProviderSMTP},
		{name: "log", cfg: Config{Provider: ProviderLog}, provider: ProviderLog},
		{name: "unknown", cfg: Config{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, nil)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if s.Provider() != tt.provider {
				t.Errorf("Provider() = %q, want %q", s.Provider(), tt.provider)
			}
		})
	}
}

func TestSMTPClient_MissingHost(t *testing.T) {
	err := NewSMTPClient(Config{}).Send(context.Background(), testMessage())
	var notConfigured ErrNotConfigured
	if !errors.As(err, &notConfigured) {
		t.Fatalf("Send() error = %v, want ErrNotConfigured", err)
	}
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("sender@example.com", testMessage())
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}
	if got := msg.GetHeader("Reply-To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Errorf("Reply-To = %v", got)
	}
	if got := msg.GetHeader("Subject"); len(got) != 1 || got[0] != "[Portfolio Contact] Hi" {
		t.Errorf("Subject = %v", got)
	}

	if _, err := buildMessage(" ", testMessage()); err == nil {
		t.Error("Expected error for empty from")
	}
}

func TestConfig_Sender(t *testing.T) {
	if got := (Config{}).Sender(); got != "noreply@balaportfolio.com" {
		t.Errorf("Sender() = %q, want fallback", got)
	}
	if got := (Config{From: " me@example.com "}).Sender(); got != "me@example.com" {
		t.Errorf("Sender() = %q", got)
	}
}

func TestLogSender_NeverFails(t *testing.T) {
	if err := NewLogSender(nil).Send(context.Background(), testMessage()); err != nil {
		t.Errorf("Send() error = %v", err)
	}
}
