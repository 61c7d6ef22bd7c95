package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDaemonCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the background daemon",
		Long: `Run the background daemon the browser talks to. It keeps the tab
selection, copies on request and opens saved folders. With --tabs it
re-reads the tab source every --refresh-interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pterm.Info.Printf("Starting daemon on %s\n", rt.app.Config.Daemon.Address)
			return rt.app.RunDaemon(cmd.Context())
		},
	}
}
