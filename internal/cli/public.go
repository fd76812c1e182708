package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

func newPortfolioCmd(getAPI func() *client.Client) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Browse the public portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := getAPI().Media(cmd.Context(), "", nil)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unreachable, showing bundled placeholder set")
				items = client.FallbackMedia()
			} else if len(items) == 0 {
				// an empty catalogue also shows the placeholder set
				items = client.FallbackMedia()
			}
			items = client.FilterByCategory(items, category)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tCATEGORY\tTYPE\tFEATURED\tURL")
			for _, m := range items {
				featured := ""
				if m.Featured {
					featured = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Title, m.Category, m.MediaType, featured, m.FileURL)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", `show one category only ("all" shows everything)`)
	return cmd
}

func newAboutCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the public site information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := getAPI().Settings(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unreachable, showing defaults")
				fallback := client.DefaultSettings()
				settings = &fallback
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, settings.SiteTitle)
			fmt.Fprintln(out, settings.Tagline)
			if settings.AboutBio != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, settings.AboutBio)
			}
			if settings.ContactEmail != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "contact:", settings.ContactEmail)
			}
			for _, link := range []string{settings.SocialInstagram, settings.SocialTwitter, settings.SocialVimeo} {
				if link != "" {
					fmt.Fprintln(out, link)
				}
			}
			return nil
		},
	}
}

func newContactCmd(getAPI func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact the artist",
	}
	cmd.AddCommand(newContactSendCmd(getAPI))
	return cmd
}

func newContactSendCmd(getAPI func() *client.Client) *cobra.Command {
	var (
		name    string
		email   string
		subject string
		message string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub := client.ContactSubmission{Name: name, Email: email, Subject: subject, Message: message}
			if err := getAPI().SubmitContact(cmd.Context(), sub); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "message sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "your email address")
	cmd.Flags().StringVar(&subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("message")
	return cmd
}
