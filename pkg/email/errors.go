package email

import "fmt"

type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// ErrNotConfigured is returned when a provider lacks the credentials it needs.
type ErrNotConfigured struct {
	Provider string
	Reason   string
}

func (e ErrNotConfigured) Error() string {
	return fmt.Sprintf("email provider %s is not configured: %s", e.Provider, e.Reason)
}

type ErrSend struct {
	Provider string
	Err      error
}

func (e ErrSend) Error() string { return fmt.Sprintf("email send failed (%s): %v", e.Provider, e.Err) }
func (e ErrSend) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from an HTTP email API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status code %d", e.StatusCode)
	}
	return fmt.Sprintf("status code %d: %s", e.StatusCode, e.Body)
}
