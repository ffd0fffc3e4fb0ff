package contact

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactform"
)

func NewSendCommand() *cobra.Command {
	var (
		form     formFlags
		endpoint string
		path     string
		timeout  time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Validate a message and submit it to the delivery endpoint",
		Example: `  portfolio contact send --name "Jane Doe" --subject Hello \
    --message "I would like to talk about a project." --reply --email jane@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			transport := contactform.NewHTTPTransport(endpoint,
				contactform.WithPath(path),
				contactform.WithTimeout(timeout),
			)
			c := contactform.New(transport)
			if verbose {
				c.OnTransition(func(from, to contactform.State) {
					fmt.Fprintf(cmd.ErrOrStderr(), "state: %s -> %s\n", from, to)
				})
			}
			form.apply(c)

			receipt, err := c.Submit(cmd.Context())
			if err != nil {
				return reportFailure(out, err)
			}

			fmt.Fprintln(out, receipt.Message)
			if receipt.RequestID != "" && verbose {
				fmt.Fprintf(out, "request id: %s\n", receipt.RequestID)
			}
			return nil
		},
	}

	form.bind(cmd)
	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "Base URL of the delivery endpoint")
	cmd.Flags().StringVar(&path, "path", contactapi.ContactSendPath, "Delivery endpoint path")
	cmd.Flags().DurationVar(&timeout, "timeout", contactform.DefaultTimeout, "Round-trip timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print state transitions and request ids")

	return cmd
}

func reportFailure(w io.Writer, err error) error {
	var verrs contactform.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintln(w, "The form has errors:")
		for _, field := range verrs.Failed() {
			fmt.Fprintf(w, "  --%s: %v\n", field, verrs[field])
		}
		return errors.New("message not sent")
	}

	var se *contactform.SubmitError
	if errors.As(err, &se) {
		if se.Retryable() {
			return fmt.Errorf("%s (%s, safe to retry)", se.Message, se.Kind)
		}
		return fmt.Errorf("%s (%s)", se.Message, se.Kind)
	}
	return err
}
