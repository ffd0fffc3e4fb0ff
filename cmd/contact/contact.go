package contact

import (
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactform"
)

func NewContactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Compose and submit contact-form messages",
	}

	cmd.AddCommand(NewSendCommand())
	cmd.AddCommand(NewPreviewCommand())

	return cmd
}

// formFlags mirrors the contact form inputs.
type formFlags struct {
	name    string
	company string
	subject string
	message string
	reply   bool
	email   string
	phone   string
}

func (f *formFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Your name")
	cmd.Flags().StringVar(&f.company, "company", "", "Company (optional)")
	cmd.Flags().StringVar(&f.subject, "subject", "", "Message subject")
	cmd.Flags().StringVar(&f.message, "message", "", "Message body, at least 10 characters")
	cmd.Flags().BoolVar(&f.reply, "reply", false, "Request a reply")
	cmd.Flags().StringVar(&f.email, "email", "", "Reply email address, required with --reply")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Reply phone number (optional)")
}

// apply copies the flags into the controller the way a user fills the form.
func (f *formFlags) apply(c *contactform.Controller) {
	c.SetField(contactform.FieldName, f.name)
	c.SetField(contactform.FieldCompany, f.company)
	c.SetField(contactform.FieldSubject, f.subject)
	c.SetField(contactform.FieldMessage, f.message)
	c.SetWantsReply(f.reply)
	c.SetField(contactform.FieldEmail, f.email)
	c.SetField(contactform.FieldPhone, f.phone)
}

func (f *formFlags) fields() contactform.Fields {
	return contactform.Fields{
		Name:       f.name,
		Company:    f.company,
		Email:      f.email,
		Subject:    f.subject,
		Message:    f.message,
		WantsReply: f.reply,
		Phone:      f.phone,
	}
}
