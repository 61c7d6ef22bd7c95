// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the use cases behind every tabkeeper front
// end: copying tabs, managing folders, sharing folders and editing
// settings. The CLI, the TUI and the background daemon all go through
// [ClientServices].
package service

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// TabProvider answers "which tabs are open" and "which tabs are selected"
// for the current front end.
type TabProvider interface {
	// Current returns the open tabs. [ErrNoTabs] when there are none.
	Current(ctx context.Context) ([]models.Tab, error)

	// Selected returns the tabs the user selected. [ErrNoTabsSelected] when
	// there are none.
	Selected(ctx context.Context) ([]models.Tab, error)
}

// CopyService formats tabs and places the result on the clipboard.
type CopyService interface {
	// CopyTabs renders tabs with settings and copies the text.
	CopyTabs(ctx context.Context, tabs []models.Tab, settings models.Settings) (CopyResult, error)

	// CopyAll copies every open tab with the saved settings. This is the
	// keyboard-shortcut path and needs no UI.
	CopyAll(ctx context.Context) (CopyResult, error)

	// CopySelected copies the selected tabs with the saved settings.
	CopySelected(ctx context.Context) (CopyResult, error)

	// CopyText copies text verbatim.
	CopyText(ctx context.Context, text string) (clipboard.Result, error)
}

// FolderService manages saved folders. Lookups of a missing folder fail
// with [ErrFolderNotFound].
type FolderService interface {
	List(ctx context.Context) ([]models.Folder, error)
	Get(ctx context.Context, id string) (models.Folder, error)
	Create(ctx context.Context, name string, tabs []models.Tab) (models.Folder, error)
	Rename(ctx context.Context, id, name string) (models.Folder, error)
	RemoveTab(ctx context.Context, id string, index int) (models.Folder, error)
	Delete(ctx context.Context, id string) error

	// SaveCurrentTabs creates a folder from the open tabs, or from the
	// selected ones when selectedOnly is set.
	SaveCurrentTabs(ctx context.Context, name string, selectedOnly bool) (models.Folder, error)

	// AddCurrentTabs appends the open (or selected) tabs to a folder.
	AddCurrentTabs(ctx context.Context, id string, selectedOnly bool) (models.Folder, error)

	// CopyFolder copies the folder tabs with the saved settings.
	CopyFolder(ctx context.Context, id string) (CopyResult, error)

	// OpenFolder opens every tab of the folder and returns how many were
	// opened.
	OpenFolder(ctx context.Context, id string) (int, error)

	// Find returns the folders whose name fuzzy-matches query, best match
	// first. An empty query returns every folder.
	Find(ctx context.Context, query string) ([]models.Folder, error)
}

// ShareService turns folders into encrypted links and back.
type ShareService interface {
	// Share encrypts the folder with password. When shorten is set the link
	// is passed through the shortener; a shortener failure is not an error.
	Share(ctx context.Context, folderID, password string, shorten bool) (ShareResult, error)

	// Open decrypts a share link.
	Open(ctx context.Context, link, password string) (models.Folder, error)

	// Import decrypts a share link and saves it as a new local folder.
	Import(ctx context.Context, link, password string) (models.Folder, error)
}

// SettingsService reads and edits user preferences and formats.
type SettingsService interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error

	// Update loads the settings, applies fn and saves the result.
	Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error)

	Formats(ctx context.Context, kind models.OutputKind) ([]models.Format, error)
	AddFormat(ctx context.Context, kind models.OutputKind, name, pattern string) (models.Format, error)
	RemoveFormat(ctx context.Context, id string) (bool, error)

	// UseFormat makes the format with id the current template of kind.
	UseFormat(ctx context.Context, kind models.OutputKind, id string) (models.Settings, error)
}

// AppInfoService reports the build the process runs.
type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}

// CopyResult describes a successful copy.
type CopyResult struct {
	Text     string
	Count    int
	Strategy string
}

// ShareResult is the outcome of [ShareService.Share]. URL is the link to
// hand out: the short one when shortening succeeded, LongURL otherwise.
type ShareResult struct {
	URL       string
	LongURL   string
	Shortened bool
}
