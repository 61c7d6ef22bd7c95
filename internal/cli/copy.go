package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type CopyInput struct {
	Selected bool
	Print    bool
}

// CopyCmd copies the open (or selected) tabs. Without a local tab source
// copying every tab is delegated to the daemon, which knows the browser's
// tabs.
type CopyCmd struct {
	copy       service.CopyService
	background adapter.BackgroundClient
}

func (c CopyCmd) Run(ctx context.Context, in CopyInput) error {
	if c.background != nil && !in.Selected {
		reply, err := c.background.Send(ctx, models.CopyAllTabs{})
		if err != nil {
			return fmt.Errorf("ask daemon to copy tabs: %w", err)
		}
		pterm.Success.Printf("Copied %d %s via daemon (%s)\n", reply.Count, tabsWord(reply.Count), reply.Strategy)
		return nil
	}

	var (
		res service.CopyResult
		err error
	)
	if in.Selected {
		res, err = c.copy.CopySelected(ctx)
	} else {
		res, err = c.copy.CopyAll(ctx)
	}
	if err != nil {
		return err
	}

	if in.Print {
		pterm.Println(res.Text)
	}
	pterm.Success.Printf("Copied %d %s (%s)\n", res.Count, tabsWord(res.Count), res.Strategy)
	return nil
}

func newCopyCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy open tabs to the clipboard",
		Long: `Copy every open tab, or only the selected ones, using the saved output
settings (titles, URLs, Markdown or plain text, sorting and grouping).`,
		Example: `  tabkeeper copy --tabs session.json
  tabkeeper copy --selected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, _ := cmd.Flags().GetBool("selected")
			printText, _ := cmd.Flags().GetBool("print")

			c := CopyCmd{copy: rt.app.Services.Copy}
			if !rt.app.HasTabSource() {
				c.background = rt.app.Background
			}
			return c.Run(cmd.Context(), CopyInput{Selected: selected, Print: printText})
		},
	}
	cmd.Flags().BoolP("selected", "s", false, "Copy only the selected tabs")
	cmd.Flags().BoolP("print", "p", false, "Also print the copied text")
	return cmd
}
