package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

// newAdminCmd gates the whole admin subtree behind a saved session.
// The check runs before any subcommand and before any network call.
func newAdminCmd(getAPI func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the site (requires login)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parent := cmd.Root().PersistentPreRun; parent != nil {
				parent(cmd, args)
			}
			sess, err := getAPI().Store().Restore()
			if err != nil {
				return err
			}
			if sess == nil {
				return fmt.Errorf("not logged in, run 'fmctl login <email>' first")
			}
			return nil
		},
	}
	cmd.AddCommand(
		newAdminStatsCmd(getAPI),
		newAdminMediaCmd(getAPI),
		newAdminSettingsCmd(getAPI),
		newAdminMessagesCmd(getAPI),
	)
	return cmd
}

func newAdminStatsCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := getAPI().Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "media:           %d\n", stats.Media)
			fmt.Fprintf(out, "featured:        %d\n", stats.Featured)
			fmt.Fprintf(out, "categories:      %d\n", stats.Categories)
			fmt.Fprintf(out, "messages:        %d\n", stats.Messages)
			fmt.Fprintf(out, "unread messages: %d\n", stats.UnreadMessages)
			return nil
		},
	}
}
