package observability

import (
	"context"
	"testing"
)

func TestProvider_ShutdownNil(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil provider = %v", err)
	}
}

func TestSkipTracing(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/livez", true},
		{"/metrics", true},
		{"/api/send-email", false},
		{"/api/contact/send", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := skipTracing(tt.path); got != tt.want {
				t.Errorf("skipTracing(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
