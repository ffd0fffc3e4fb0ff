package email

import (
	"context"
	"log/slog"
	"strings"
)

// LogSender writes messages to the log instead of delivering them. It backs
// local development where no provider credentials exist.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Provider() string { return ProviderLog }

func (s *LogSender) Send(ctx context.Context, m Message) error {
	s.logger.InfoContext(ctx, "email not sent (development mode)",
		"to", strings.Join(m.To, ","),
		"from", m.From,
		"reply_to", m.ReplyTo,
		"subject", m.Subject,
		"html_bytes", len(m.HTMLBody),
	)
	return nil
}
