package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type FormatsCmd struct {
	settings service.SettingsService
}

func parseKind(s string) (models.OutputKind, error) {
	kind, ok := models.ParseOutputKind(s)
	if !ok {
		return "", fmt.Errorf("%w: %q (use markdown or plain)", ErrUnknownKind, s)
	}
	return kind, nil
}

func currentTemplate(settings models.Settings, kind models.OutputKind) string {
	if kind == models.Markdown {
		return settings.MarkdownTemplate
	}
	return settings.PlainTemplate
}

func (f FormatsCmd) List(ctx context.Context, kind models.OutputKind, out string) error {
	formats, err := f.settings.Formats(ctx, kind)
	if err != nil {
		return err
	}
	if out == outputJSON {
		return printJSON(formats)
	}

	settings, err := f.settings.Load(ctx)
	if err != nil {
		return err
	}
	current := currentTemplate(settings, kind)

	rows := pterm.TableData{{"", "ID", "Name", "Pattern", "Source"}}
	for _, format := range formats {
		mark, source := "", "custom"
		if format.Pattern == current {
			mark = "*"
		}
		if format.BuiltIn {
			source = "built-in"
		}
		rows = append(rows, []string{mark, format.ID, format.Name, format.Pattern, source})
	}
	renderTable(rows)
	return nil
}

func (f FormatsCmd) Add(ctx context.Context, kind models.OutputKind, name, pattern string) error {
	format, err := f.settings.AddFormat(ctx, kind, name, pattern)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Added format %q (%s)\n", format.Name, format.ID)
	return nil
}

func (f FormatsCmd) Remove(ctx context.Context, id string) error {
	removed, err := f.settings.RemoveFormat(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		pterm.Warning.Printf("No custom format with id %q\n", id)
		return nil
	}
	pterm.Success.Printf("Removed format %s\n", id)
	return nil
}

func (f FormatsCmd) Use(ctx context.Context, kind models.OutputKind, id string) error {
	settings, err := f.settings.UseFormat(ctx, kind, id)
	if err != nil {
		return err
	}
	pterm.Success.Printf("%s template is now %s\n", kind, currentTemplate(settings, kind))
	return nil
}

func newFormatsCommand(rt *runtime) *cobra.Command {
	formats := func() FormatsCmd { return FormatsCmd{settings: rt.app.Services.Settings} }
	kindFlag := func(cmd *cobra.Command) (models.OutputKind, error) {
		s, _ := cmd.Flags().GetString("kind")
		return parseKind(s)
	}

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Manage output templates",
		Long: `Templates turn a tab into a line of text. Placeholders:
  {{title}}         tab title
  {{url}}           tab URL
  {{@index}}        1-based position
  {{@domainIndex}}  1-based position within the domain group

Custom formats are available for Markdown only.`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the formats of a kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			return formats().List(cmd.Context(), kind, out)
		},
	}
	addOutputFlag(list)

	add := &cobra.Command{
		Use:     "add <name> <pattern>",
		Short:   "Add a custom format",
		Example: `  tabkeeper formats add "Bold links" "- **[{{title}}]({{url}})**"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			return formats().Add(cmd.Context(), kind, args[0], args[1])
		},
	}

	remove := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom format",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return formats().Remove(cmd.Context(), args[0])
		},
	}

	use := &cobra.Command{
		Use:   "use <id>",
		Short: "Make a format the current template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			return formats().Use(cmd.Context(), kind, args[0])
		},
	}

	for _, c := range []*cobra.Command{list, add, use} {
		c.Flags().StringP("kind", "k", string(models.Markdown), "Output kind: markdown or plain")
	}

	cmd.AddCommand(list, add, remove, use)
	return cmd
}
