package contact

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/config"
	svccontact "github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactform"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
)

func NewPreviewCommand() *cobra.Command {
	var (
		form formFlags
		html bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the message as the form displays it and as it will be emailed",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fields := form.fields()

			fmt.Fprintln(out, "--- form preview ---")
			fmt.Fprintln(out, contactform.ComposePreview(fields.Message, fields.Email, fields.Phone, fields.WantsReply))

			if errs := contactform.Validate(fields); !errs.Valid() {
				fmt.Fprintf(out, "\n--- validation ---\n%v\n", errs)
				return nil
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			// Rendering never sends, so the log sender stands in for the provider.
			svc := svccontact.New(email.NewLogSender(slog.Default()), svccontact.Options{
				From:          email.FromCentralConfig(cfg.Email).Sender(),
				DefaultRegion: cfg.Contact.DefaultRegion,
			})

			sub := fields.Submission()
			msg, err := svc.Render(svccontact.DeliverRequest{
				Name:       sub.Name,
				Company:    sub.Company,
				Email:      sub.Email,
				Subject:    sub.Subject,
				Message:    sub.Message,
				WantsReply: sub.WantsReply,
				Phone:      sub.Phone,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n--- email ---\nTo: %v\nFrom: %s\n", msg.To, msg.From)
			if msg.ReplyTo != "" {
				fmt.Fprintf(out, "Reply-To: %s\n", msg.ReplyTo)
			}
			fmt.Fprintf(out, "Subject: %s\n\n", msg.Subject)
			if html {
				fmt.Fprintln(out, msg.HTMLBody)
			} else {
				fmt.Fprintln(out, msg.TextBody)
			}
			return nil
		},
	}

	form.bind(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "Print the HTML body instead of the plain-text one")

	return cmd
}
