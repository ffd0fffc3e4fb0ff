package contactform

import "strings"

// ContactDetailsMarker starts the synthesized block in a preview.
const ContactDetailsMarker = "\n\nContact Details:"

// ComposePreview returns message as it should be displayed: any earlier
// contact block is stripped, and a fresh one is appended when a reply is
// requested. Applying it to its own output gives the same result.
func ComposePreview(message, email, phone string, wantsReply bool) string {
	base := StripContactDetails(message)
	if !wantsReply {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(ContactDetailsMarker)
	if email != "" {
		b.WriteString("\nEmail: " + email)
	}
	if phone != "" {
		b.WriteString("\nPhone: " + phone)
	}
	return b.String()
}

// StripContactDetails removes the last contact block, if any.
func StripContactDetails(message string) string {
	if i := strings.LastIndex(message, ContactDetailsMarker); i >= 0 {
		return message[:i]
	}
	return message
}
