package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

func newAdminMediaCmd(getAPI func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage portfolio media",
	}
	cmd.AddCommand(
		newMediaLsCmd(getAPI),
		newMediaUploadCmd(getAPI),
		newMediaRmCmd(getAPI),
		newMediaFeatureCmd(getAPI),
	)
	return cmd
}

func newMediaLsCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List all media with ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := getAPI().Media(cmd.Context(), "", nil)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tORDER\tTITLE\tCATEGORY\tTYPE\tFEATURED")
			for _, m := range items {
				featured := ""
				if m.Featured {
					featured = "*"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", m.ID, m.Order, m.Title, m.Category, m.MediaType, featured)
			}
			return w.Flush()
		},
	}
}

func newMediaUploadCmd(getAPI func() *client.Client) *cobra.Command {
	var (
		title       string
		description string
		category    string
		mediaType   string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a new media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// validate locally before any request goes out
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("file %q not found", args[0])
			}
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("--title is required")
			}

			item, err := getAPI().UploadMedia(cmd.Context(), args[0], title, description, category, mediaType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s)\n", item.Title, item.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title shown in the portfolio")
	cmd.Flags().StringVar(&description, "description", "", "longer description")
	cmd.Flags().StringVar(&category, "category", "", "portfolio category (default Portrait)")
	cmd.Flags().StringVar(&mediaType, "type", "", "image or video (default image)")
	return cmd
}

func newMediaRmCmd(getAPI func() *client.Client) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one media item and its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, fmt.Sprintf("delete media %s?", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err := getAPI().DeleteMedia(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newMediaFeatureCmd(getAPI func() *client.Client) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "feature <id>",
		Short: "Feature a media item on the home page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			featured := !off
			item, err := getAPI().UpdateMedia(cmd.Context(), args[0], client.MediaUpdate{Featured: &featured})
			if err != nil {
				return err
			}
			state := "featured"
			if !item.Featured {
				state = "unfeatured"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, item.Title)
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "remove the item from the featured set")
	return cmd
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
