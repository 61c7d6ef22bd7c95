package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type FolderCreateInput struct {
	Name     string
	Selected bool
	// Empty creates the folder without taking the open tabs.
	Empty bool
}

// FoldersCmd implements the folders subcommands. Folders are referenced by
// id or, when no id matches, by name.
type FoldersCmd struct {
	folders service.FolderService
}

func (f FoldersCmd) resolve(ctx context.Context, ref string) (models.Folder, error) {
	folder, err := f.folders.Get(ctx, ref)
	if err == nil || !errors.Is(err, service.ErrFolderNotFound) {
		return folder, err
	}

	all, listErr := f.folders.List(ctx)
	if listErr != nil {
		return models.Folder{}, listErr
	}
	matches := lo.Filter(all, func(x models.Folder, _ int) bool {
		return strings.EqualFold(x.Name, ref)
	})
	switch len(matches) {
	case 0:
		return models.Folder{}, err
	case 1:
		return matches[0], nil
	default:
		return models.Folder{}, fmt.Errorf("%w: %q", ErrAmbiguousFolder, ref)
	}
}

func (f FoldersCmd) List(ctx context.Context, out string) error {
	folders, err := f.folders.List(ctx)
	if err != nil {
		return err
	}
	if out == outputJSON {
		return printJSON(folders)
	}
	if len(folders) == 0 {
		pterm.Info.Println("No folders yet. Save the open tabs with: tabkeeper folders create <name>")
		return nil
	}
	renderTable(folderRows(folders))
	return nil
}

func (f FoldersCmd) Show(ctx context.Context, ref, out string) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if out == outputJSON {
		return printJSON(folder)
	}

	pterm.DefaultSection.Println(folder.Name)
	if len(folder.Tabs) == 0 {
		pterm.Info.Println("Folder is empty")
		return nil
	}
	renderTable(tabRows(folder.HostTabs()))
	return nil
}

func (f FoldersCmd) Create(ctx context.Context, in FolderCreateInput) error {
	var (
		folder models.Folder
		err    error
	)
	if in.Empty {
		folder, err = f.folders.Create(ctx, in.Name, nil)
	} else {
		folder, err = f.folders.SaveCurrentTabs(ctx, in.Name, in.Selected)
	}
	if err != nil {
		return err
	}

	n := len(folder.Tabs)
	pterm.Success.Printf("Created folder %q (%s) with %d %s\n", folder.Name, folder.ID, n, tabsWord(n))
	return nil
}

func (f FoldersCmd) Rename(ctx context.Context, ref, name string) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	renamed, err := f.folders.Rename(ctx, folder.ID, name)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Renamed %q to %q\n", folder.Name, renamed.Name)
	return nil
}

func (f FoldersCmd) Add(ctx context.Context, ref string, selected bool) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	updated, err := f.folders.AddCurrentTabs(ctx, folder.ID, selected)
	if err != nil {
		return err
	}
	added := len(updated.Tabs) - len(folder.Tabs)
	pterm.Success.Printf("Added %d %s to %q\n", added, tabsWord(added), updated.Name)
	return nil
}

// RemoveTab drops tab number (1-based, as printed by show) from a folder.
func (f FoldersCmd) RemoveTab(ctx context.Context, ref string, number int) error {
	if number < 1 {
		return ErrInvalidTabNumber
	}
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if _, err = f.folders.RemoveTab(ctx, folder.ID, number-1); err != nil {
		return err
	}
	pterm.Success.Printf("Removed tab %d from %q\n", number, folder.Name)
	return nil
}

func (f FoldersCmd) Delete(ctx context.Context, ref string) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if err = f.folders.Delete(ctx, folder.ID); err != nil {
		return err
	}
	pterm.Success.Printf("Deleted folder %q\n", folder.Name)
	return nil
}

func (f FoldersCmd) Find(ctx context.Context, query, out string) error {
	folders, err := f.folders.Find(ctx, query)
	if err != nil {
		return err
	}
	if out == outputJSON {
		return printJSON(folders)
	}
	if len(folders) == 0 {
		pterm.Info.Printf("No folders match %q\n", query)
		return nil
	}
	renderTable(folderRows(folders))
	return nil
}

func (f FoldersCmd) Open(ctx context.Context, ref string) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	n, err := f.folders.OpenFolder(ctx, folder.ID)
	if n > 0 {
		pterm.Success.Printf("Opened %d %s from %q\n", n, tabsWord(n), folder.Name)
	}
	return err
}

func (f FoldersCmd) Copy(ctx context.Context, ref string) error {
	folder, err := f.resolve(ctx, ref)
	if err != nil {
		return err
	}
	res, err := f.folders.CopyFolder(ctx, folder.ID)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Copied %d %s from %q (%s)\n", res.Count, tabsWord(res.Count), folder.Name, res.Strategy)
	return nil
}

func newFoldersCommand(rt *runtime) *cobra.Command {
	folders := func() FoldersCmd { return FoldersCmd{folders: rt.app.Services.Folders} }

	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder", "f"},
		Short:   "Manage saved folders of tabs",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			return folders().List(cmd.Context(), out)
		},
	}
	addOutputFlag(list)

	show := &cobra.Command{
		Use:   "show <folder>",
		Short: "Show the tabs of a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			return folders().Show(cmd.Context(), args[0], out)
		},
	}
	addOutputFlag(show)

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Save the open tabs as a new folder",
		Example: `  tabkeeper folders create Research --tabs session.json
  tabkeeper folders create "Read later" --selected
  tabkeeper folders create Inbox --empty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, _ := cmd.Flags().GetBool("selected")
			empty, _ := cmd.Flags().GetBool("empty")
			return folders().Create(cmd.Context(), FolderCreateInput{Name: args[0], Selected: selected, Empty: empty})
		},
	}
	create.Flags().BoolP("selected", "s", false, "Save only the selected tabs")
	create.Flags().Bool("empty", false, "Create the folder without tabs")
	create.MarkFlagsMutuallyExclusive("selected", "empty")

	rename := &cobra.Command{
		Use:   "rename <folder> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return folders().Rename(cmd.Context(), args[0], args[1])
		},
	}

	add := &cobra.Command{
		Use:   "add <folder>",
		Short: "Append the open tabs to a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, _ := cmd.Flags().GetBool("selected")
			return folders().Add(cmd.Context(), args[0], selected)
		},
	}
	add.Flags().BoolP("selected", "s", false, "Append only the selected tabs")

	removeTab := &cobra.Command{
		Use:   "remove-tab <folder> <number>",
		Short: "Remove a tab from a folder",
		Long:  "Remove the tab with the given number, as printed by 'folders show'.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[1])
			if err != nil {
				return ErrInvalidTabNumber
			}
			return folders().RemoveTab(cmd.Context(), args[0], number)
		},
	}

	del := &cobra.Command{
		Use:     "delete <folder>",
		Aliases: []string{"rm"},
		Short:   "Delete a folder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return folders().Delete(cmd.Context(), args[0])
		},
	}

	find := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-find folders by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			return folders().Find(cmd.Context(), args[0], out)
		},
	}
	addOutputFlag(find)

	open := &cobra.Command{
		Use:   "open <folder>",
		Short: "Open every tab of a folder in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return folders().Open(cmd.Context(), args[0])
		},
	}

	cp := &cobra.Command{
		Use:   "copy <folder>",
		Short: "Copy the tabs of a folder to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return folders().Copy(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, show, create, rename, add, removeTab, del, find, open, cp)
	return cmd
}
