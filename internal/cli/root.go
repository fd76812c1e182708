// Package cli implements the fmctl command line interface over the
// findelmundo backend.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/findelmundo/core/pkg/client"
)

const defaultAPIBase = "http://localhost:8001"

// NewRootCmd builds the full fmctl command tree.
func NewRootCmd() *cobra.Command {
	var (
		apiBase  string
		stateDir string
		api      *client.Client
	)

	root := &cobra.Command{
		Use:           "fmctl",
		Short:         "Manage the FINDELMUNNDO portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if apiBase == "" {
				apiBase = os.Getenv("FDM_API")
			}
			if apiBase == "" {
				apiBase = defaultAPIBase
			}
			api = client.New(apiBase, client.NewSessionStore(stateDir))
		},
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "", "backend base address (default $FDM_API or "+defaultAPIBase+")")
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "directory holding the saved session")

	getAPI := func() *client.Client { return api }

	root.AddCommand(
		newLoginCmd(getAPI),
		newRegisterCmd(getAPI),
		newLogoutCmd(getAPI),
		newWhoamiCmd(getAPI),
		newPortfolioCmd(getAPI),
		newAboutCmd(getAPI),
		newContactCmd(getAPI),
		newAdminCmd(getAPI),
	)
	return root
}

// Execute runs fmctl and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
