package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
	"github.com/Alijeyrad/portfolio_backend/pkg/reqctx"
)

const (
	instrumentationName = "github.com/Alijeyrad/portfolio_backend/internal/service/contact"

	// SubjectDelivered is published after every successful delivery.
	SubjectDelivered = "portfolio.contact.delivered"

	MessageSent      = "Email sent successfully"
	MessageLogged    = "Message logged (development mode - email not sent)"
	MessageDuplicate = "Message already received"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type DeliverRequest struct {
	Name       string `validate:"required,max=200"`
	Company    string `validate:"max=200"`
	Email      string `validate:"required_if=WantsReply true,omitempty,email,max=254"`
	Subject    string `validate:"required,max=300"`
	Message    string `validate:"required,max=10000"`
	WantsReply bool
	Phone      string `validate:"max=50"`

	// IdempotencyKey is optional; requests sharing a key are delivered once.
	IdempotencyKey string `validate:"max=128"`
}

type Receipt struct {
	Message         string
	Provider        string
	DevelopmentMode bool
	Duplicate       bool
}

// DeliveredEvent is the payload published on SubjectDelivered.
type DeliveredEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	Provider    string    `json:"provider"`
	WantsReply  bool      `json:"wants_reply"`
	HasCompany  bool      `json:"has_company"`
	ReceivedAt  time.Time `json:"received_at,omitzero"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Deliver validates, renders and sends one submission.
	Deliver(ctx context.Context, req DeliverRequest) (*Receipt, error)
	// Render builds the outgoing message without sending it.
	Render(req DeliverRequest) (email.Message, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type Options struct {
	From           string
	Timeout        time.Duration
	IdempotencyTTL time.Duration
	DefaultRegion  string

	Deduper   Deduper   // optional
	Publisher Publisher // optional
	Logger    *slog.Logger
}

type contactService struct {
	sender   email.Sender
	opts     Options
	validate *validator.Validate
	counter  metric.Int64Counter
}

func New(sender email.Sender, opts Options) Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	counter, _ := otel.Meter(instrumentationName).Int64Counter(
		"contact_deliveries_total",
		metric.WithDescription("Contact submissions by delivery outcome"),
		metric.WithUnit("{submission}"),
	)

	return &contactService{
		sender:   sender,
		opts:     opts,
		validate: validator.New(),
		counter:  counter,
	}
}

func (s *contactService) Render(req DeliverRequest) (email.Message, error) {
	req = normalize(req)
	if err := s.check(req); err != nil {
		return email.Message{}, err
	}
	return s.render(req), nil
}

func (s *contactService) Deliver(ctx context.Context, req DeliverRequest) (*Receipt, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "contact.Deliver")
	defer span.End()

	log := s.opts.Logger.With(reqctx.LogAttrs(ctx)...)

	req = normalize(req)
	if err := s.check(req); err != nil {
		s.record(ctx, "malformed")
		log.InfoContext(ctx, "contact submission rejected", "reason", err.Error())
		return nil, err
	}

	provider := s.sender.Provider()
	span.SetAttributes(
		attribute.String("contact.provider", provider),
		attribute.Bool("contact.wants_reply", req.WantsReply),
	)

	held := false
	if req.IdempotencyKey != "" && s.opts.Deduper != nil {
		state, err := s.opts.Deduper.Reserve(ctx, req.IdempotencyKey, s.opts.IdempotencyTTL)
		switch {
		case err != nil:
			// Without a working store the submission is delivered as if it had no key.
			log.WarnContext(ctx, "idempotency reservation failed", "err", err)
		case state == ReservationSent:
			s.record(ctx, "duplicate")
			log.InfoContext(ctx, "duplicate contact submission collapsed")
			return &Receipt{Message: MessageDuplicate, Provider: provider, Duplicate: true}, nil
		case state == ReservationPending:
			s.record(ctx, "in_flight")
			log.InfoContext(ctx, "contact submission already in flight")
			return nil, ErrInFlight{Provider: provider}
		default:
			held = true
		}
	}

	msg := s.render(req)

	sendCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	log.InfoContext(ctx, "sending contact email", "provider", provider, "wants_reply", req.WantsReply)
	if err := s.sender.Send(sendCtx, msg); err != nil {
		if held {
			s.release(ctx, log, req.IdempotencyKey)
		}

		var out error
		if errors.Is(err, context.DeadlineExceeded) {
			out = ErrTimeout{Provider: provider, After: s.opts.Timeout}
			s.record(ctx, "timeout")
		} else {
			out = ErrDeliveryProvider{Provider: provider, Err: err}
			s.record(ctx, "provider_error")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, out.Error())
		log.ErrorContext(ctx, "contact email failed", "provider", provider, "err", err)
		return nil, out
	}

	if held {
		s.complete(ctx, log, req.IdempotencyKey)
	}
	s.record(ctx, "sent")
	s.publish(ctx, log, DeliveredEvent{
		RequestID:   reqctx.RequestIDFromContext(ctx),
		ReceivedAt:  reqctx.ReceivedAt(ctx),
		Provider:    provider,
		WantsReply:  req.WantsReply,
		HasCompany:  req.Company != "",
		DeliveredAt: time.Now().UTC(),
	})

	if provider == email.ProviderLog {
		return &Receipt{Message: MessageLogged, Provider: provider, DevelopmentMode: true}, nil
	}
	log.InfoContext(ctx, "contact email sent", "provider", provider)
	return &Receipt{Message: MessageSent, Provider: provider}, nil
}

func (s *contactService) render(req DeliverRequest) email.Message {
	data := email.ContactEmailData{
		Recipient:  contactapi.RecipientEmail,
		From:       s.opts.From,
		SubjectTag: contactapi.SubjectTag,
		Name:       req.Name,
		Company:    req.Company,
		Subject:    req.Subject,
		Message:    req.Message,
		WantsReply: req.WantsReply,
	}
	if req.WantsReply {
		data.Email = req.Email
		data.Phone = formatPhone(req.Phone, s.opts.DefaultRegion)
	}
	return email.BuildContactEmail(data)
}

func (s *contactService) check(req DeliverRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ErrMalformedPayload{Reason: err.Error()}
	}

	// Report the first failing field, in declaration order.
	fe := fieldErrs[0]
	return ErrMalformedPayload{Field: fe.Field(), Reason: describe(fe)}
}

func describe(fe validator.FieldError) string {
	label := fe.Field()
	if label == "IdempotencyKey" {
		label = "Idempotency key"
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "required_if":
		return label + " is required when requesting a reply"
	case "email":
		return label + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func (s *contactService) complete(ctx context.Context, log *slog.Logger, key string) {
	if err := s.opts.Deduper.Complete(context.WithoutCancel(ctx), key, s.opts.IdempotencyTTL); err != nil {
		log.WarnContext(ctx, "idempotency completion failed", "err", err)
	}
}

func (s *contactService) release(ctx context.Context, log *slog.Logger, key string) {
	if err := s.opts.Deduper.Release(context.WithoutCancel(ctx), key); err != nil {
		log.WarnContext(ctx, "idempotency release failed", "err", err)
	}
}

func (s *contactService) publish(ctx context.Context, log *slog.Logger, ev DeliveredEvent) {
	if s.opts.Publisher == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := s.opts.Publisher.Publish(SubjectDelivered, data); err != nil {
		log.WarnContext(ctx, "publish delivered event failed", "err", err)
	}
}

func (s *contactService) record(ctx context.Context, outcome string) {
	s.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func normalize(req DeliverRequest) DeliverRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	req.Phone = strings.TrimSpace(req.Phone)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if !req.WantsReply {
		req.Email = ""
		req.Phone = ""
	}
	return req
}

// formatPhone renders a reply number in international form when it parses;
// anything else is passed through untouched.
func formatPhone(raw, region string) string {
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
