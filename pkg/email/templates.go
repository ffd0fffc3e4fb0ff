package email

import (
	"html"
	"strings"
)

// ContactEmailData is the content of one contact-form submission.
type ContactEmailData struct {
	Recipient  string
	From       string
	SubjectTag string

	Name       string
	Company    string
	Subject    string
	Message    string
	WantsReply bool
	Email      string
	Phone      string
}

// BuildContactEmail renders a contact-form submission for the site owner.
// The output depends only on data, so equal inputs give byte-identical bodies.
func BuildContactEmail(data ContactEmailData) Message {
	subject := data.Subject
	if data.SubjectTag != "" {
		subject = data.SubjectTag + " " + data.Subject
	}

	msg := Message{
		From:     data.From,
		To:       []string{data.Recipient},
		Subject:  subject,
		TextBody: contactText(data),
		HTMLBody: contactHTML(data),
	}
	if data.WantsReply && data.Email != "" {
		msg.ReplyTo = data.Email
	}
	return msg
}

func hasReplyDetails(data ContactEmailData) bool {
	return data.WantsReply && (data.Email != "" || data.Phone != "")
}

func contactHTML(data ContactEmailData) string {
	var b strings.Builder

	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(`<p><strong>Name:</strong> ` + html.EscapeString(data.Name) + `</p>`)

	if data.Company != "" {
		b.WriteString(`<p><strong>Company:</strong> ` + html.EscapeString(data.Company) + `</p>`)
	}

	b.WriteString(`<p><strong>Subject:</strong> ` + html.EscapeString(data.Subject) + `</p>`)
	b.WriteString(`<p><strong>Message:</strong></p>`)
	b.WriteString(`<div style="padding: 15px; background-color: #f5f5f5; border-radius: 5px; margin: 10px 0;">`)
	b.WriteString(`<p>` + multiline(data.Message) + `</p>`)
	b.WriteString(`</div>`)

	if hasReplyDetails(data) {
		b.WriteString(`<h3 style="color: #2563eb; margin-top: 20px;">Contact Details for Reply:</h3>`)
		if data.Email != "" {
			addr := html.EscapeString(data.Email)
			b.WriteString(`<p><strong>Email:</strong> <a href="mailto:` + addr + `">` + addr + `</a></p>`)
		}
		if data.Phone != "" {
			b.WriteString(`<p><strong>Phone:</strong> ` + html.EscapeString(data.Phone) + `</p>`)
		}
	}

	return b.String()
}

func contactText(data ContactEmailData) string {
	var b strings.Builder

	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Name: " + data.Name + "\n")
	if data.Company != "" {
		b.WriteString("Company: " + data.Company + "\n")
	}
	b.WriteString("Subject: " + data.Subject + "\n\n")
	b.WriteString(normalizeNewlines(data.Message) + "\n")

	if hasReplyDetails(data) {
		b.WriteString("\nContact Details for Reply:\n")
		if data.Email != "" {
			b.WriteString("Email: " + data.Email + "\n")
		}
		if data.Phone != "" {
			b.WriteString("Phone: " + data.Phone + "\n")
		}
	}

	return b.String()
}

func multiline(s string) string {
	return strings.ReplaceAll(html.EscapeString(normalizeNewlines(s)), "\n", "<br>")
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
