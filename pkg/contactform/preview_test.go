package contactform

import "testing"

func TestComposePreview(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		email      string
		phone      string
		wantsReply bool
		want       string
	}{
		{"no reply", "Hello", "a@b.co", "555", false, "Hello"},
		{"reply with both", "Hello", "a@b.co", "555", true, "Hello\n\nContact Details:\nEmail: a@b.co\nPhone: 555"},
		{"reply email only", "Hello", "a@b.co", "", true, "Hello\n\nContact Details:\nEmail: a@b.co"},
		{"reply nothing yet", "Hello", "", "", true, "Hello\n\nContact Details:"},
		{"replaces old block", "Hello\n\nContact Details:\nEmail: old@b.co", "new@b.co", "", true, "Hello\n\nContact Details:\nEmail: new@b.co"},
		{"strips block when reply off", "Hello\n\nContact Details:\nEmail: a@b.co", "", "", false, "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposePreview(tt.message, tt.email, tt.phone, tt.wantsReply)
			if got != tt.want {
				t.Errorf("ComposePreview() = %q, want %q", got, tt.want)
			}
			again := ComposePreview(got, tt.email, tt.phone, tt.wantsReply)
			if again != got {
				t.Errorf("not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestController_PreviewDoesNotMutateMessage(t *testing.T) {
	c := New(&fakeTransport{})
	c.SetField(FieldMessage, "Hello there")
	c.SetWantsReply(true)
	c.SetField(FieldEmail, "a@b.co")

	if got := c.Preview(); got != "Hello there\n\nContact Details:\nEmail: a@b.co" {
		t.Errorf("Preview() = %q", got)
	}
	if got := c.Fields().Message; got != "Hello there" {
		t.Errorf("message mutated: %q", got)
	}

	c.SetWantsReply(false)
	if got := c.Preview(); got != "Hello there" {
		t.Errorf("Preview() after toggle = %q", got)
	}
}
