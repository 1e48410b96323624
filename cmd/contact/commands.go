package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/octobees/portfolio-contact/api/internal/client"
)

const defaultBaseURL = "http://localhost:3000"

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "contact",
		Short:         "Talk to the portfolio contact backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "url", defaultBaseURL, "backend base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(newSendCmd(opts), newPingCmd(opts))
	return root
}

func (o *rootOptions) formClient() *client.FormClient {
	return client.NewFormClient(&http.Client{Timeout: o.timeout}, o.baseURL)
}

func newSendCmd(opts *rootOptions) *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit the contact form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := opts.formClient()
			form.SetFields(name, email, message)

			err := form.Submit(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), form.Feedback())
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is online",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := opts.formClient().Ping(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
