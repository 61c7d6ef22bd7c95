package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/MKhiriev/go-tab-keeper/models"
)

type folderItem struct {
	folder models.Folder
}

func (i folderItem) Title() string { return i.folder.Name }

func (i folderItem) Description() string {
	n := len(i.folder.Tabs)
	desc := fmt.Sprintf("%d %s", n, plural(n, "tab", "tabs"))
	if created := i.folder.CreatedTime(); !created.IsZero() {
		desc += ", " + created.Local().Format("2006-01-02 15:04")
	}
	return desc
}

func (i folderItem) FilterValue() string { return i.folder.Name }

func newFolderList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Folders"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("folder", "folders")
	l.DisableQuitKeybindings()
	return l
}

func folderItems(folders []models.Folder) []list.Item {
	items := make([]list.Item, 0, len(folders))
	for _, f := range folders {
		items = append(items, folderItem{folder: f})
	}
	return items
}
