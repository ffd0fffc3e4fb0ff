package email

import "context"

type Message struct {
	// From overrides the sender configured on the client.
	From     string
	To       []string
	CC       []string
	BCC      []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}

// Sender delivers a single message through one provider.
type Sender interface {
	Send(ctx context.Context, m Message) error
	// Provider names the backing delivery provider, e.g. "sendgrid".
	Provider() string
}
