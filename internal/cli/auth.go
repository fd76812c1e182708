package cli

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/findelmundo/core/pkg/client"
)

func newLoginCmd(getAPI func() *client.Client) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password)
			if err != nil {
				return err
			}
			sess, err := getAPI().Login(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", sess.Admin.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(getAPI func() *client.Client) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create the admin account and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password)
			if err != nil {
				return err
			}
			sess, err := getAPI().Register(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", sess.Admin.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := getAPI().Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(getAPI func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session's identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := getAPI().Store().Restore()
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.Admin.Email)
			return nil
		},
	}
}

// resolvePassword uses the flag value when given, otherwise prompts
// with echo disabled.
func resolvePassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimSpace(string(raw))
	if pw == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return pw, nil
}
