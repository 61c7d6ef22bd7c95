package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type VersionInput struct {
	Output string
}

type VersionCmd struct {
	info service.AppInfoService
	// daemon is set when the daemon build should be reported too.
	daemon adapter.BackgroundClient
}

func (v VersionCmd) Run(ctx context.Context, in VersionInput) error {
	local := v.info.Version(ctx)

	var remote *models.VersionResponse
	if v.daemon != nil {
		r, err := v.daemon.Version(ctx)
		if err != nil {
			return fmt.Errorf("daemon version: %w", err)
		}
		remote = &r
	}

	if in.Output == outputJSON {
		return printJSON(struct {
			Client models.VersionResponse  `json:"client"`
			Daemon *models.VersionResponse `json:"daemon,omitempty"`
		}{local, remote})
	}

	rows := pterm.TableData{
		{"Component", "Version", "Date", "Commit"},
		{"client", local.Version, local.Date, local.Commit},
	}
	if remote != nil {
		rows = append(rows, []string{"daemon", remote.Version, remote.Date, remote.Commit})
	}
	renderTable(rows)
	return nil
}

func newVersionCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}

			v := VersionCmd{info: service.NewAppInfoService(rt.info)}
			if withDaemon, _ := cmd.Flags().GetBool("daemon"); withDaemon {
				cfg, err := config.Load(rt.flags)
				if err != nil {
					return err
				}
				if v.daemon, err = adapter.NewHTTPBackgroundClient(cfg.Daemon); err != nil {
					return err
				}
			}
			return v.Run(cmd.Context(), VersionInput{Output: out})
		},
	}
	cmd.Flags().Bool("daemon", false, "Also ask the running daemon for its build")
	addOutputFlag(cmd)
	return cmd
}
