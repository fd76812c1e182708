package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

func newAdminSettingsCmd(getAPI func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the site-wide settings record",
	}
	cmd.AddCommand(newSettingsShowCmd(getAPI), newSettingsEditCmd(getAPI))
	return cmd
}

func newSettingsShowCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getAPI().Settings(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd, s)
			return nil
		},
	}
}

// newSettingsEditCmd reads the full record, applies the given flags,
// and writes the whole record back. Unset flags keep their current
// value; there is no partial patch on the wire.
func newSettingsEditCmd(getAPI func() *client.Client) *cobra.Command {
	fields := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update settings fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := getAPI()
			current, err := api.Settings(cmd.Context())
			if err != nil {
				return err
			}

			apply := map[string]*string{
				"title":     &current.SiteTitle,
				"tagline":   &current.Tagline,
				"bio":       &current.AboutBio,
				"email":     &current.ContactEmail,
				"instagram": &current.SocialInstagram,
				"twitter":   &current.SocialTwitter,
				"vimeo":     &current.SocialVimeo,
			}
			changed := false
			for flag, dst := range apply {
				if cmd.Flags().Changed(flag) {
					*dst = *fields[flag]
					changed = true
				}
			}
			if !changed {
				return fmt.Errorf("nothing to change, pass at least one field flag")
			}

			saved, err := api.SaveSettings(cmd.Context(), *current)
			if err != nil {
				return err
			}
			printSettings(cmd, saved)
			return nil
		},
	}
	for flag, usage := range map[string]string{
		"title":     "site title",
		"tagline":   "tagline under the title",
		"bio":       "about page biography",
		"email":     "public contact email",
		"instagram": "instagram link",
		"twitter":   "twitter link",
		"vimeo":     "vimeo link",
	} {
		fields[flag] = cmd.Flags().String(flag, "", usage)
	}
	return cmd
}

func printSettings(cmd *cobra.Command, s *client.SiteSettings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "title:     %s\n", s.SiteTitle)
	fmt.Fprintf(out, "tagline:   %s\n", s.Tagline)
	fmt.Fprintf(out, "bio:       %s\n", s.AboutBio)
	fmt.Fprintf(out, "email:     %s\n", s.ContactEmail)
	fmt.Fprintf(out, "instagram: %s\n", s.SocialInstagram)
	fmt.Fprintf(out, "twitter:   %s\n", s.SocialTwitter)
	fmt.Fprintf(out, "vimeo:     %s\n", s.SocialVimeo)
}
