package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

// DefaultTimeout bounds one submission round trip.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPTransport posts submissions to the delivery endpoint as JSON.
type HTTPTransport struct {
	baseURL    string
	path       string
	timeout    time.Duration
	httpClient *http.Client
}

type TransportOption func(*HTTPTransport)

func WithTimeout(d time.Duration) TransportOption {
	return func(t *HTTPTransport) { t.timeout = d }
}

// WithPath selects the endpoint path; contactapi.ContactSendPath by default.
func WithPath(p string) TransportOption {
	return func(t *HTTPTransport) { t.path = p }
}

func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) { t.httpClient = c }
}

func NewHTTPTransport(baseURL string, opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       contactapi.ContactSendPath,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Send(ctx context.Context, sub contactapi.Submission, idempotencyKey string) (*Receipt, error) {
	b, err := json.Marshal(sub)
	if err != nil {
		return nil, &SubmitError{Kind: contactapi.KindMalformedPayload, Message: GenericFailure, Err: fmt.Errorf("marshal submission: %w", err)}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+t.path, bytes.NewReader(b))
	if err != nil {
		return nil, &SubmitError{Kind: contactapi.KindNetwork, Message: GenericFailure, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(contactapi.HeaderIdempotencyKey, idempotencyKey)
	}

	res, err := t.httpClient.Do(req)
	if err != nil {
		return nil, t.transportError(err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, t.transportError(err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, responseError(res.StatusCode, raw)
	}

	var ok contactapi.SuccessResponse
	if err := json.Unmarshal(raw, &ok); err != nil {
		// Delivered; the body is informational only.
		ok.Message = strings.TrimSpace(string(raw))
	}
	return &Receipt{
		Message:         ok.Message,
		DevelopmentMode: ok.DevelopmentMode,
		Duplicate:       ok.Duplicate,
		RequestID:       ok.RequestID,
	}, nil
}

func (t *HTTPTransport) transportError(err error) *SubmitError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &SubmitError{
			Kind:    contactapi.KindTimeout,
			Message: fmt.Sprintf("The server did not respond within %s. Please try again.", t.timeout),
			Err:     err,
		}
	}
	return &SubmitError{Kind: contactapi.KindNetwork, Message: GenericFailure, Err: err}
}

// responseError builds the user-facing error for a non-2xx answer. Text comes
// from the "error" field, then "message", then the raw body.
func responseError(status int, raw []byte) *SubmitError {
	var body struct {
		Error   string          `json:"error"`
		Message string          `json:"message"`
		Kind    contactapi.Kind `json:"kind"`
	}
	_ = json.Unmarshal(raw, &body)

	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" && body.Kind == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = GenericFailure
	}

	kind := body.Kind
	if kind == "" {
		kind = kindForStatus(status)
	}
	return &SubmitError{Kind: kind, Message: msg, Status: status}
}

func kindForStatus(status int) contactapi.Kind {
	switch {
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		return contactapi.KindTimeout
	case status == http.StatusTooManyRequests || status == http.StatusConflict:
		return contactapi.KindDeliveryProvider
	case status >= 400 && status < 500:
		return contactapi.KindMalformedPayload
	default:
		return contactapi.KindDeliveryProvider
	}
}
