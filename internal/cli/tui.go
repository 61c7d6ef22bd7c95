package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/tui"
)

func newTUICommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive popup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.New(rt.app.Services, rt.app.Session, rt.app.Logger).Run(cmd.Context())
		},
	}
}
