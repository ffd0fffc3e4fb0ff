// Package contactform is the client side of the contact pipeline: it holds
// form state, validates it, and submits it to the delivery endpoint.
package contactform

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

type Field string

const (
	FieldName    Field = "name"
	FieldCompany Field = "company"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
	FieldPhone   Field = "phone"
)

// MinMessageLength is the shortest accepted message, counted after trimming.
const MinMessageLength = 10

// fieldOrder is the order errors are reported in.
var fieldOrder = []Field{FieldName, FieldCompany, FieldEmail, FieldSubject, FieldMessage, FieldPhone}

// Fields is the raw form state as typed by the user.
type Fields struct {
	Name       string
	Company    string
	Email      string
	Subject    string
	Message    string
	WantsReply bool
	Phone      string
}

func (f *Fields) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldCompany:
		f.Company = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	case FieldPhone:
		f.Phone = value
	}
}

// Submission returns the trimmed wire payload. Reply fields are dropped when
// no reply was requested.
func (f Fields) Submission() contactapi.Submission {
	sub := contactapi.Submission{
		Name:           strings.TrimSpace(f.Name),
		Company:        strings.TrimSpace(f.Company),
		Subject:        strings.TrimSpace(f.Subject),
		Message:        strings.TrimSpace(f.Message),
		WantsReply:     f.WantsReply,
		RecipientEmail: contactapi.RecipientEmail,
	}
	if f.WantsReply {
		sub.Email = strings.TrimSpace(f.Email)
		sub.Phone = strings.TrimSpace(f.Phone)
	}
	return sub
}

// formRules carries the validation tags; values are trimmed before checking.
type formRules struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required_if=WantsReply true,omitempty,email"`
	Subject    string `form:"subject" validate:"required"`
	Message    string `form:"message" validate:"required,min=10"`
	WantsReply bool   `form:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := sf.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks fields and returns one error per failing field. It has no
// side effects; the result is empty when the form may be submitted.
func Validate(f Fields) ValidationErrors {
	rules := formRules{
		Name:       strings.TrimSpace(f.Name),
		Subject:    strings.TrimSpace(f.Subject),
		Message:    strings.TrimSpace(f.Message),
		WantsReply: f.WantsReply,
	}
	// email is not checked at all without a reply request
	if f.WantsReply {
		rules.Email = strings.TrimSpace(f.Email)
	}

	errs := ValidationErrors{}
	err := validate.Struct(rules)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs
	}
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		switch fe.Tag() {
		case "required", "required_if":
			errs[field] = RequiredFieldError{Field: field}
		case "min":
			errs[field] = TooShortError{Field: field, Min: MinMessageLength, Got: len([]rune(rules.Message))}
		case "email":
			errs[field] = InvalidFormatError{Field: field}
		}
	}
	return errs
}
