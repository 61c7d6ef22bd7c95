// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the tabkeeper command tree. Every command shares the
// persistent configuration flags; the App behind them is assembled once,
// right before the selected command runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/client"
	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// skipApp marks commands that run without storage or clipboard.
const skipApp = "tabkeeper/skip-app"

type runtime struct {
	flags *config.Config
	info  models.AppBuildInfo
	app   *client.App
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	rt := &runtime{info: info}
	defer rt.close()
	return rt.rootCommand().ExecuteContext(ctx)
}

func (rt *runtime) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tabkeeper",
		Short: "Copy, save and share browser tabs",
		Long: `tabkeeper copies browser tabs as Markdown or plain text, keeps named
folders of tabs and shares them as password-protected links.

Tabs come from a session export (--tabs) or from the background daemon,
which the browser keeps informed about the current selection.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.open,
	}
	rt.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newCopyCommand(rt),
		newFoldersCommand(rt),
		newShareCommand(rt),
		newFormatsCommand(rt),
		newSettingsCommand(rt),
		newDaemonCommand(rt),
		newSelectCommand(rt),
		newTUICommand(rt),
		newVersionCommand(rt),
	)
	return root
}

func (rt *runtime) open(cmd *cobra.Command, _ []string) error {
	if rt.app != nil || cmd.Annotations[skipApp] != "" {
		return nil
	}

	app, err := client.NewApp(cmd.Context(), client.Options{
		Flags:     rt.flags,
		BuildInfo: rt.info,
		Daemon:    cmd.Name() == "daemon",
	})
	if err != nil {
		return err
	}
	rt.app = app
	cmd.SetContext(app.Context(cmd.Context()))
	return nil
}

func (rt *runtime) close() {
	if rt.app == nil {
		return
	}
	if err := rt.app.Close(); err != nil {
		rt.app.Logger.Err(err).Str("func", "runtime.close").Msg("error closing storage")
	}
	rt.app = nil
}
