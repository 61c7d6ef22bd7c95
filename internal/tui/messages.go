package tui

import (
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type foldersLoadedMsg struct {
	folders []models.Folder
	err     error
}

type tabsLoadedMsg struct {
	tabs []models.Tab
	err  error
}

type settingsMsg struct {
	settings models.Settings
	status   string
	err      error
}

type copiedMsg struct {
	count    int
	strategy string
	err      error
}

type folderSavedMsg struct {
	folder models.Folder
	status string
	err    error
}

type folderDeletedMsg struct {
	name string
	err  error
}

type openedMsg struct {
	count int
	err   error
}

type sharedMsg struct {
	result service.ShareResult
	err    error
}

type clearStatusMsg struct {
	seq int
}
