// Package contactapi holds the wire contract shared by the contact form
// client and the delivery endpoint.
package contactapi

const (
	SendEmailPath   = "/api/send-email"
	ContactSendPath = "/api/contact/send"

	// HeaderIdempotencyKey lets a client collapse repeated submissions of the
	// same form into a single delivery.
	HeaderIdempotencyKey = "Idempotency-Key"

	// RecipientEmail is the site owner's mailbox. It is not user-editable.
	RecipientEmail = "contact@balaportfolio.com"

	SubjectTag = "[Portfolio Contact]"
)

// Kind classifies a failed submission.
type Kind string

const (
	KindMalformedPayload Kind = "malformed_payload"
	KindDeliveryProvider Kind = "delivery_provider"
	KindTimeout          Kind = "timeout"

	// KindNetwork is produced on the client only, when no response arrived.
	KindNetwork Kind = "network"
)

// Retryable reports whether re-submitting the same payload can succeed.
func (k Kind) Retryable() bool {
	switch k {
	case KindDeliveryProvider, KindTimeout, KindNetwork:
		return true
	default:
		return false
	}
}

// Submission is one contact-form submission as sent over the wire.
type Submission struct {
	Name           string `json:"name"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	WantsReply     bool   `json:"wantsReply"`
	Phone          string `json:"phone,omitempty"`
	RecipientEmail string `json:"recipientEmail,omitempty"`
}

type SuccessResponse struct {
	Message         string `json:"message"`
	DevelopmentMode bool   `json:"development_mode,omitempty"`
	Duplicate       bool   `json:"duplicate,omitempty"`
	RequestID       string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      Kind   `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
