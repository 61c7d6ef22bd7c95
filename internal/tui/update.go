package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// start runs cmd unless another action is still in flight.
func (m model) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, cmd
}

// warn reports err without leaving the current screen.
func (m model) warn(err error) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = humanizeError(err)
	m.statusIsErr = true
	return m, cmdClearStatus(m.statusSeq)
}

func (m model) selectedFolder() (models.Folder, bool) {
	item, ok := m.folders.SelectedItem().(folderItem)
	if !ok {
		return models.Folder{}, false
	}
	return item.folder, true
}

func (m model) openInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	m.back = m.screen
	m.inputMode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.screen = screenInput
	return m, m.input.Focus()
}

func (m model) openShare(folder models.Folder) (tea.Model, tea.Cmd) {
	m.folder = folder
	m.back = m.screen
	m.password.Reset()
	m.screen = screenShare
	return m, m.password.Focus()
}

func (m model) updateFolders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.folders.FilterState() == list.Filtering {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.screen = screenTabs
		return m, m.cmdLoadTabs()
	case key.Matches(msg, keys.newFolder):
		return m.openInput(inputSave, "")
	}

	folder, ok := m.selectedFolder()
	if !ok {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.folder = folder
		m.cursor = 0
		m.screen = screenFolder
		return m, nil
	case key.Matches(msg, keys.copy):
		return m.start(m.cmdCopyFolder(folder.ID))
	case key.Matches(msg, keys.open):
		return m.start(m.cmdOpenFolder(folder.ID))
	case key.Matches(msg, keys.share):
		return m.openShare(folder)
	case key.Matches(msg, keys.rename):
		m.folder = folder
		return m.openInput(inputRename, folder.Name)
	case key.Matches(msg, keys.delete):
		m.confirm = confirmModel{folderID: folder.ID, name: folder.Name}
		m.showConfirm = true
		return m, nil
	}

	return m.forward(msg)
}

func (m model) updateFolder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.back):
		m.screen = screenFolders
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.folder.Tabs)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.copy):
		return m.start(m.cmdCopyFolder(m.folder.ID))
	case key.Matches(msg, keys.open):
		return m.start(m.cmdOpenFolder(m.folder.ID))
	case key.Matches(msg, keys.share):
		return m.openShare(m.folder)
	case key.Matches(msg, keys.delete):
		if len(m.folder.Tabs) == 0 {
			return m, nil
		}
		return m.start(m.cmdRemoveTab(m.folder.ID, m.cursor))
	}
	return m, nil
}

func (m model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.back), key.Matches(msg, keys.tab):
		m.screen = screenFolders
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.tabs)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.toggle):
		if len(m.tabs) > 0 {
			m.session.ToggleSelected(m.tabs[m.cursor].ID)
		}
	case key.Matches(msg, keys.titles):
		return m.start(m.cmdToggle("Titles", func(s *models.Settings) *bool { return &s.IncludeTitles }))
	case key.Matches(msg, keys.urls):
		return m.start(m.cmdToggle("URLs", func(s *models.Settings) *bool { return &s.IncludeURLs }))
	case key.Matches(msg, keys.markdown):
		return m.start(m.cmdToggle("Markdown", func(s *models.Settings) *bool { return &s.UseMarkdown }))
	case key.Matches(msg, keys.sort):
		return m.start(m.cmdToggle("Sort by position", func(s *models.Settings) *bool { return &s.SortByPosition }))
	case key.Matches(msg, keys.group):
		return m.start(m.cmdToggle("Group by domain", func(s *models.Settings) *bool { return &s.GroupByDomain }))
	case key.Matches(msg, keys.copy):
		tabs := m.copyTargets()
		if len(tabs) == 0 {
			return m.warn(service.ErrNoTabs)
		}
		return m.start(m.cmdCopyTabs(tabs))
	case key.Matches(msg, keys.newFolder):
		return m.openInput(inputSave, "")
	}
	return m, nil
}

// copyTargets is the selection when there is one, every open tab otherwise.
func (m model) copyTargets() []models.Tab {
	if selected := m.session.Selected(); len(selected) > 0 {
		return selected
	}
	return m.tabs
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.input.Blur()
		m.screen = m.back
		return m, nil
	case key.Matches(msg, keys.enter):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m.warn(service.ErrEmptyFolderName)
		}
		if m.inputMode == inputRename {
			return m.start(m.cmdRename(m.folder.ID, name))
		}
		return m.start(m.cmdSaveFolder(name, len(m.session.Selected()) > 0))
	}
	return m.forward(msg)
}

func (m model) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.password.Reset()
		m.password.Blur()
		m.screen = m.back
		return m, nil
	case key.Matches(msg, keys.enter):
		password := m.password.Value()
		if password == "" {
			return m.warn(service.ErrEmptyPassword)
		}
		if m.busy {
			return m, nil
		}
		m.password.Reset()
		return m.start(m.cmdShare(m.folder.ID, password))
	}
	return m.forward(msg)
}

func (m model) updateShareResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		return m.start(m.cmdCopyText(m.shareURL))
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.password.Blur()
		m.screen = m.back
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		return m.start(m.cmdDelete(m.confirm.folderID, m.confirm.name))
	case key.Matches(msg, keys.no):
		m.showConfirm = false
	}
	return m, nil
}
