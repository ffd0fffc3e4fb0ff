package contactform

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validFields() Fields {
	return Fields{
		Name:    "Jane Doe",
		Subject: "Hi",
		Message: "This is long enough",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		want   map[Field]error
	}{
		{
			name:   "valid without reply",
			mutate: func(*Fields) {},
			want:   map[Field]error{},
		},
		{
			name:   "empty name",
			mutate: func(f *Fields) { f.Name = "" },
			want:   map[Field]error{FieldName: RequiredFieldError{Field: FieldName}},
		},
		{
			name:   "whitespace name",
			mutate: func(f *Fields) { f.Name = "   " },
			want:   map[Field]error{FieldName: RequiredFieldError{Field: FieldName}},
		},
		{
			name:   "whitespace subject",
			mutate: func(f *Fields) { f.Subject = "\t\n" },
			want:   map[Field]error{FieldSubject: RequiredFieldError{Field: FieldSubject}},
		},
		{
			name:   "empty message",
			mutate: func(f *Fields) { f.Message = "  " },
			want:   map[Field]error{FieldMessage: RequiredFieldError{Field: FieldMessage}},
		},
		{
			name:   "nine characters after trim",
			mutate: func(f *Fields) { f.Message = "  123456789  " },
			want:   map[Field]error{FieldMessage: TooShortError{Field: FieldMessage, Min: 10, Got: 9}},
		},
		{
			name:   "ten characters passes",
			mutate: func(f *Fields) { f.Message = "1234567890" },
			want:   map[Field]error{},
		},
		{
			name:   "reply without email",
			mutate: func(f *Fields) { f.WantsReply = true },
			want:   map[Field]error{FieldEmail: RequiredFieldError{Field: FieldEmail}},
		},
		{
			name:   "reply with bad email",
			mutate: func(f *Fields) { f.WantsReply = true; f.Email = "not-an-email" },
			want:   map[Field]error{FieldEmail: InvalidFormatError{Field: FieldEmail}},
		},
		{
			name:   "reply with good email",
			mutate: func(f *Fields) { f.WantsReply = true; f.Email = "a@b.co" },
			want:   map[Field]error{},
		},
		{
			name:   "bad email ignored without reply",
			mutate: func(f *Fields) { f.Email = "not-an-email" },
			want:   map[Field]error{},
		},
		{
			name:   "phone never checked",
			mutate: func(f *Fields) { f.WantsReply = true; f.Email = "a@b.co"; f.Phone = "???" },
			want:   map[Field]error{},
		},
		{
			name:   "everything missing",
			mutate: func(f *Fields) { *f = Fields{} },
			want: map[Field]error{
				FieldName:    RequiredFieldError{Field: FieldName},
				FieldSubject: RequiredFieldError{Field: FieldSubject},
				FieldMessage: RequiredFieldError{Field: FieldMessage},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			got := Validate(f)
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
			for field, want := range tt.want {
				if got[field] != want {
					t.Errorf("field %s: got %#v, want %#v", field, got[field], want)
				}
			}
		})
	}
}

func TestValidationErrors_Messages(t *testing.T) {
	errs := Validate(Fields{WantsReply: true, Message: "short"})

	if !errors.As(errs[FieldMessage], new(TooShortError)) {
		t.Fatalf("message error = %T", errs[FieldMessage])
	}
	want := []string{
		"name: Please enter your name",
		"email: Email is required if you want a reply",
		"subject: Please enter a subject",
		"message: Message should be at least 10 characters",
	}
	if got := errs.Error(); got != strings.Join(want, "; ") {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationErrors_Failed(t *testing.T) {
	errs := Validate(Fields{WantsReply: true, Email: "nope", Message: "short"})

	want := []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
	for i := 0; i < 20; i++ {
		if got := errs.Failed(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Failed() = %v, want %v", got, want)
		}
	}
	if got := (ValidationErrors{}).Failed(); len(got) != 0 {
		t.Errorf("Failed() on no errors = %v", got)
	}
}

func TestFields_Submission(t *testing.T) {
	f := Fields{
		Name:       "  Jane ",
		Company:    " Acme ",
		Email:      " a@b.co ",
		Subject:    " Hi ",
		Message:    "  Hello there, world  ",
		Phone:      " 555 ",
		WantsReply: false,
	}

	sub := f.Submission()
	if sub.Name != "Jane" || sub.Company != "Acme" || sub.Subject != "Hi" || sub.Message != "Hello there, world" {
		t.Errorf("fields not trimmed: %+v", sub)
	}
	if sub.Email != "" || sub.Phone != "" {
		t.Errorf("reply fields sent without wantsReply: %+v", sub)
	}

	f.WantsReply = true
	sub = f.Submission()
	if sub.Email != "a@b.co" || sub.Phone != "555" {
		t.Errorf("reply fields = %q, %q", sub.Email, sub.Phone)
	}
}
