package contactform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

var (
	ErrSubmitInProgress = errors.New("contactform: a submission is already in flight")
	ErrAlreadySent      = errors.New("contactform: message already sent, start a new one first")
)

// GenericFailure is shown when the server gave no usable error text.
const GenericFailure = "Failed to send message. Please try again."

type RequiredFieldError struct {
	Field Field
}

func (e RequiredFieldError) Error() string {
	switch e.Field {
	case FieldName:
		return "Please enter your name"
	case FieldSubject:
		return "Please enter a subject"
	case FieldMessage:
		return "Please enter your message"
	case FieldEmail:
		return "Email is required if you want a reply"
	default:
		return fmt.Sprintf("%s is required", e.Field)
	}
}

type TooShortError struct {
	Field Field
	Min   int
	Got   int
}

func (e TooShortError) Error() string {
	return fmt.Sprintf("Message should be at least %d characters", e.Min)
}

type InvalidFormatError struct {
	Field Field
}

func (e InvalidFormatError) Error() string {
	if e.Field == FieldEmail {
		return "Please enter a valid email address"
	}
	return fmt.Sprintf("%s is not valid", e.Field)
}

// ValidationErrors maps each failing field to its error.
type ValidationErrors map[Field]error

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, f := range v.Failed() {
		msgs = append(msgs, string(f)+": "+v[f].Error())
	}
	return strings.Join(msgs, "; ")
}

// Failed lists the failing fields in the order the form shows them.
func (v ValidationErrors) Failed() []Field {
	out := make([]Field, 0, len(v))
	for _, f := range fieldOrder {
		if _, ok := v[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Valid reports whether no field failed.
func (v ValidationErrors) Valid() bool { return len(v) == 0 }

// SubmitError is a failed submission as seen by the user. Message is the
// server's text when it sent one.
type SubmitError struct {
	Kind    contactapi.Kind
	Message string
	Status  int // zero when no response arrived
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }
func (e *SubmitError) Unwrap() error { return e.Err }

// Retryable reports whether submitting the same form again can succeed.
func (e *SubmitError) Retryable() bool { return e.Kind.Retryable() }
