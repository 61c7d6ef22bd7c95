package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// setting parses a raw value into an edit of the settings.
type setting func(value string) (func(*models.Settings), error)

func boolSetting(field func(*models.Settings) *bool) setting {
	return func(value string) (func(*models.Settings), error) {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("want true or false, got %q", value)
		}
		return func(s *models.Settings) { *field(s) = v }, nil
	}
}

func templateSetting(field func(*models.Settings) *string) setting {
	return func(value string) (func(*models.Settings), error) {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("template must not be empty")
		}
		return func(s *models.Settings) { *field(s) = value }, nil
	}
}

var settingEditors = map[string]setting{
	"titles":            boolSetting(func(s *models.Settings) *bool { return &s.IncludeTitles }),
	"urls":              boolSetting(func(s *models.Settings) *bool { return &s.IncludeURLs }),
	"markdown":          boolSetting(func(s *models.Settings) *bool { return &s.UseMarkdown }),
	"sort":              boolSetting(func(s *models.Settings) *bool { return &s.SortByPosition }),
	"group":             boolSetting(func(s *models.Settings) *bool { return &s.GroupByDomain }),
	"markdown-template": templateSetting(func(s *models.Settings) *string { return &s.MarkdownTemplate }),
	"plain-template":    templateSetting(func(s *models.Settings) *string { return &s.PlainTemplate }),
}

func settingNames() string {
	names := lo.Keys(settingEditors)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

type SettingsCmd struct {
	settings service.SettingsService
}

func (s SettingsCmd) Show(ctx context.Context, out string) error {
	current, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if out == outputJSON {
		return printJSON(current)
	}
	printSettings(current)
	return nil
}

func (s SettingsCmd) Set(ctx context.Context, name, value string) error {
	parse, ok := settingEditors[name]
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownSetting, name, settingNames())
	}
	edit, err := parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	updated, err := s.settings.Update(ctx, edit)
	if err != nil {
		return err
	}
	pterm.Success.Printf("%s updated\n", name)
	printSettings(updated)
	return nil
}

func printSettings(s models.Settings) {
	renderTable(pterm.TableData{
		{"Setting", "Value"},
		{"titles", strconv.FormatBool(s.IncludeTitles)},
		{"urls", strconv.FormatBool(s.IncludeURLs)},
		{"markdown", strconv.FormatBool(s.UseMarkdown)},
		{"sort", strconv.FormatBool(s.SortByPosition)},
		{"group", strconv.FormatBool(s.GroupByDomain)},
		{"markdown-template", s.MarkdownTemplate},
		{"plain-template", s.PlainTemplate},
	})
}

func newSettingsCommand(rt *runtime) *cobra.Command {
	settingsCmd := func() SettingsCmd { return SettingsCmd{settings: rt.app.Services.Settings} }

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change output settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			return settingsCmd().Show(cmd.Context(), out)
		},
	}
	addOutputFlag(show)

	set := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Change one setting",
		Long:  "Change one setting. Known settings: " + settingNames() + ".",
		Example: `  tabkeeper settings set markdown false
  tabkeeper settings set plain-template "{{url}}"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return settingsCmd().Set(cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}
