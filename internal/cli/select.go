package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/host"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type SelectInput struct {
	// IDs picks tabs by browser tab id. Empty means the highlighted tabs.
	IDs   []int
	Clear bool
}

// SelectCmd reports a tab selection to the daemon, the way the browser
// does when the user highlights tabs.
type SelectCmd struct {
	source     host.TabSource
	background adapter.BackgroundClient
}

func (s SelectCmd) Run(ctx context.Context, in SelectInput) error {
	tabs := []models.Tab{}
	if !in.Clear {
		picked, err := s.pick(ctx, in.IDs)
		if err != nil {
			return err
		}
		tabs = picked
	}

	reply, err := s.background.Send(ctx, models.TabsSelected{Tabs: tabs})
	if err != nil {
		return fmt.Errorf("send selection to daemon: %w", err)
	}

	if in.Clear {
		pterm.Success.Println("Selection cleared")
		return nil
	}
	pterm.Success.Printf("Selected %d %s\n", reply.Count, tabsWord(reply.Count))
	return nil
}

func (s SelectCmd) pick(ctx context.Context, ids []int) ([]models.Tab, error) {
	if s.source == nil {
		return nil, ErrNoTabSource
	}

	var (
		tabs []models.Tab
		err  error
	)
	if len(ids) == 0 {
		tabs, err = s.source.Highlighted(ctx)
	} else {
		var all []models.Tab
		all, err = s.source.Tabs(ctx)
		tabs = lo.Filter(all, func(t models.Tab, _ int) bool { return lo.Contains(ids, t.ID) })
	}
	if err != nil {
		return nil, err
	}
	if len(tabs) == 0 {
		return nil, service.ErrNoTabsSelected
	}
	return tabs, nil
}

func newSelectCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [tab-id...]",
		Short: "Tell the daemon which tabs are selected",
		Long: `Send a tab selection to the daemon. Without ids the highlighted tabs of
the tab source are sent; --clear sends an empty selection.`,
		Example: `  tabkeeper select --tabs session.json
  tabkeeper select --tabs session.json 12 14
  tabkeeper select --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseTabIDs(args)
			if err != nil {
				return err
			}
			clearAll, _ := cmd.Flags().GetBool("clear")

			s := SelectCmd{source: rt.app.Source(), background: rt.app.Background}
			return s.Run(cmd.Context(), SelectInput{IDs: ids, Clear: clearAll})
		},
	}
	cmd.Flags().Bool("clear", false, "Clear the daemon selection")
	return cmd
}

func parseTabIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		var id int
		if _, err := fmt.Sscan(a, &id); err != nil {
			return nil, fmt.Errorf("invalid tab id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
