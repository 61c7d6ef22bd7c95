package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tab-keeper/models"
)

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m model) cmdLoadFolders() tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		folders, err := svc.List(ctx)
		return foldersLoadedMsg{folders: folders, err: err}
	}
}

func (m model) cmdLoadTabs() tea.Cmd {
	ctx, svc := m.ctx, m.services.Tabs
	return func() tea.Msg {
		tabs, err := svc.Current(ctx)
		return tabsLoadedMsg{tabs: tabs, err: err}
	}
}

func (m model) cmdLoadSettings() tea.Cmd {
	ctx, svc := m.ctx, m.services.Settings
	return func() tea.Msg {
		settings, err := svc.Load(ctx)
		return settingsMsg{settings: settings, err: err}
	}
}

// cmdToggle flips the option field points to and saves the settings.
func (m model) cmdToggle(label string, field func(*models.Settings) *bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.Settings
	return func() tea.Msg {
		settings, err := svc.Update(ctx, func(s *models.Settings) {
			p := field(s)
			*p = !*p
		})
		if err != nil {
			return settingsMsg{err: err}
		}
		return settingsMsg{settings: settings, status: label + " " + onOff(*field(&settings))}
	}
}

func (m model) cmdCopyTabs(tabs []models.Tab) tea.Cmd {
	ctx, svc, settings := m.ctx, m.services.Copy, m.settings
	return func() tea.Msg {
		res, err := svc.CopyTabs(ctx, tabs, settings)
		return copiedMsg{count: res.Count, strategy: res.Strategy, err: err}
	}
}

func (m model) cmdCopyFolder(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		res, err := svc.CopyFolder(ctx, id)
		return copiedMsg{count: res.Count, strategy: res.Strategy, err: err}
	}
}

func (m model) cmdCopyText(text string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Copy
	return func() tea.Msg {
		res, err := svc.CopyText(ctx, text)
		return copiedMsg{strategy: res.Strategy, err: err}
	}
}

func (m model) cmdSaveFolder(name string, selectedOnly bool) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		folder, err := svc.SaveCurrentTabs(ctx, name, selectedOnly)
		if err != nil {
			return folderSavedMsg{err: err}
		}
		n := len(folder.Tabs)
		return folderSavedMsg{
			folder: folder,
			status: fmt.Sprintf("Saved %q with %d %s", folder.Name, n, plural(n, "tab", "tabs")),
		}
	}
}

func (m model) cmdRename(id, name string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		folder, err := svc.Rename(ctx, id, name)
		if err != nil {
			return folderSavedMsg{err: err}
		}
		return folderSavedMsg{folder: folder, status: fmt.Sprintf("Renamed to %q", folder.Name)}
	}
}

func (m model) cmdRemoveTab(id string, index int) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		folder, err := svc.RemoveTab(ctx, id, index)
		if err != nil {
			return folderSavedMsg{err: err}
		}
		return folderSavedMsg{folder: folder, status: "Tab removed"}
	}
}

func (m model) cmdDelete(id, name string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		return folderDeletedMsg{name: name, err: svc.Delete(ctx, id)}
	}
}

func (m model) cmdOpenFolder(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Folders
	return func() tea.Msg {
		n, err := svc.OpenFolder(ctx, id)
		return openedMsg{count: n, err: err}
	}
}

func (m model) cmdShare(id, password string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Share
	return func() tea.Msg {
		res, err := svc.Share(ctx, id, password, true)
		return sharedMsg{result: res, err: err}
	}
}
