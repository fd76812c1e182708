package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

func newAdminMessagesCmd(getAPI func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read the contact inbox",
	}
	cmd.AddCommand(newMessagesLsCmd(getAPI), newMessagesReadCmd(getAPI))
	return cmd
}

func newMessagesLsCmd(getAPI func() *client.Client) *cobra.Command {
	var unread bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := getAPI().Messages(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tFROM\tSUBJECT\tREAD")
			for _, m := range msgs {
				if unread && m.Read {
					continue
				}
				read := ""
				if m.Read {
					read = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s <%s>\t%s\t%s\n",
					m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Subject, read)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "show unread messages only")
	return cmd
}

func newMessagesReadCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Show one message and mark it read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := getAPI().MarkMessageRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "From:    %s <%s>\n", msg.Name, msg.Email)
			fmt.Fprintf(out, "Date:    %s\n", msg.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "Subject: %s\n", msg.Subject)
			fmt.Fprintln(out)
			fmt.Fprintln(out, msg.Message)
			return nil
		},
	}
}
