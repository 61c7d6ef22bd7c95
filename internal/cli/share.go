package cli

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
)

type ShareCreateInput struct {
	Folder    string
	Password  string
	NoShorten bool
	Copy      bool
}

type ShareOpenInput struct {
	URL      string
	Password string
	Output   string
}

type ShareCmd struct {
	share   service.ShareService
	folders FoldersCmd
	copy    service.CopyService
}

func (s ShareCmd) Create(ctx context.Context, in ShareCreateInput) error {
	folder, err := s.folders.resolve(ctx, in.Folder)
	if err != nil {
		return err
	}

	res, err := s.share.Share(ctx, folder.ID, in.Password, !in.NoShorten)
	if err != nil {
		return err
	}

	if !in.NoShorten && !res.Shortened {
		pterm.Warning.Println("Link shortener unavailable, using the full link")
	}
	pterm.Success.Printf("Share link for %q:\n", folder.Name)
	pterm.Println(res.URL)

	if in.Copy {
		copied, err := s.copy.CopyText(ctx, res.URL)
		if err != nil {
			return err
		}
		pterm.Info.Printf("Link copied (%s)\n", copied.Strategy)
	}
	return nil
}

func (s ShareCmd) Open(ctx context.Context, in ShareOpenInput) error {
	folder, err := s.share.Open(ctx, in.URL, in.Password)
	if err != nil {
		return err
	}
	if in.Output == outputJSON {
		return printJSON(folder)
	}

	pterm.DefaultSection.Println(folder.Name)
	renderTable(tabRows(folder.HostTabs()))
	return nil
}

func (s ShareCmd) Import(ctx context.Context, in ShareOpenInput) error {
	folder, err := s.share.Import(ctx, in.URL, in.Password)
	if err != nil {
		return err
	}
	n := len(folder.Tabs)
	pterm.Success.Printf("Imported %q (%s) with %d %s\n", folder.Name, folder.ID, n, tabsWord(n))
	return nil
}

// readPassword returns --password, prompting for it with masked input when
// the flag is empty.
func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}
	password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(password, "\r\n"), nil
}

func newShareCommand(rt *runtime) *cobra.Command {
	shareCmd := func() ShareCmd {
		services := rt.app.Services
		return ShareCmd{
			share:   services.Share,
			folders: FoldersCmd{folders: services.Folders},
			copy:    services.Copy,
		}
	}

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share folders as password-protected links",
		Long: `Folders are encrypted with a password before they leave the machine.
Anyone with the link and the password can open the folder in the viewer
or import it with 'share import'.`,
	}

	create := &cobra.Command{
		Use:   "create <folder>",
		Short: "Create a share link for a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			noShorten, _ := cmd.Flags().GetBool("long")
			cp, _ := cmd.Flags().GetBool("copy")
			return shareCmd().Create(cmd.Context(), ShareCreateInput{
				Folder:    args[0],
				Password:  password,
				NoShorten: noShorten,
				Copy:      cp,
			})
		},
	}
	create.Flags().Bool("long", false, "Do not shorten the link")
	create.Flags().Bool("copy", false, "Copy the link to the clipboard")

	open := &cobra.Command{
		Use:   "open <url>",
		Short: "Decrypt a share link and print its tabs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFlag(cmd)
			if err != nil {
				return err
			}
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			return shareCmd().Open(cmd.Context(), ShareOpenInput{URL: args[0], Password: password, Output: out})
		},
	}
	addOutputFlag(open)

	imp := &cobra.Command{
		Use:   "import <url>",
		Short: "Decrypt a share link and save it as a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			return shareCmd().Import(cmd.Context(), ShareOpenInput{URL: args[0], Password: password})
		},
	}

	for _, c := range []*cobra.Command{create, open, imp} {
		c.Flags().String("password", "", "Share password (prompted when empty)")
	}

	cmd.AddCommand(create, open, imp)
	return cmd
}
