package email

import (
	"context"
	"errors"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

// SendGridClient delivers through the SendGrid v3 mail API.
type SendGridClient struct {
	cfg Config
}

func NewSendGridClient(cfg Config) *SendGridClient {
	if cfg.SendGridHost == "" {
		cfg.SendGridHost = defaultSendGridHost
	}
	return &SendGridClient{cfg: cfg}
}

func (c *SendGridClient) Provider() string { return ProviderSendGrid }

func (c *SendGridClient) Send(ctx context.Context, m Message) error {
	if strings.TrimSpace(c.cfg.SendGridAPIKey) == "" {
		return ErrNotConfigured{Provider: ProviderSendGrid, Reason: "api key is empty"}
	}

	from := m.From
	if from == "" {
		from = c.cfg.Sender()
	}
	v3, err := buildSendGridMail(from, m)
	if err != nil {
		return err
	}

	req := sendgrid.GetRequest(c.cfg.SendGridAPIKey, sendGridEndpoint, c.cfg.SendGridHost)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(v3)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return context.DeadlineExceeded
		}
		return ErrSend{Provider: ProviderSendGrid, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrSend{
			Provider: ProviderSendGrid,
			Err:      &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(resp.Body)},
		}
	}

	return nil
}

func buildSendGridMail(from string, m Message) (*mail.SGMailV3, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}

	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail("", from))
	v3.Subject = subj

	p := mail.NewPersonalization()
	p.AddTos(toEmails(to)...)
	if cc := cleanAddrs(m.CC); len(cc) > 0 {
		p.AddCCs(toEmails(cc)...)
	}
	if bcc := cleanAddrs(m.BCC); len(bcc) > 0 {
		p.AddBCCs(toEmails(bcc)...)
	}
	v3.AddPersonalizations(p)

	if r := strings.TrimSpace(m.ReplyTo); r != "" {
		v3.SetReplyTo(mail.NewEmail("", r))
	}

	for k, v := range m.Headers {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		v3.SetHeader(k, v)
	}

	// SendGrid requires text/plain ahead of text/html.
	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""
	if !hasText && !hasHTML {
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}
	if hasText {
		v3.AddContent(mail.NewContent("text/plain", m.TextBody))
	}
	if hasHTML {
		v3.AddContent(mail.NewContent("text/html", m.HTMLBody))
	}

	return v3, nil
}

func toEmails(addrs []string) []*mail.Email {
	out := make([]*mail.Email, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, mail.NewEmail("", a))
	}
	return out
}
