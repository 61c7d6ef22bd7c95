// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the in-memory state of one running tabkeeper
// front end (the TUI or the daemon): the tabs it last read, the user's tab
// selection and the folder list it last loaded.
//
// A Session is owned by its front end and passed explicitly to whoever
// needs it. It is never authoritative for folders: stores reload from
// storage before every change.
package session

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// Session is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	tabs     []models.Tab
	selected []models.Tab
	folders  []models.Folder
	settings models.Settings
}

// New returns an empty session with default settings.
func New() *Session {
	return &Session{
		tabs:     []models.Tab{},
		selected: []models.Tab{},
		folders:  []models.Folder{},
		settings: models.DefaultSettings(),
	}
}

func (s *Session) SetTabs(tabs []models.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = cloneOrEmpty(tabs)
}

func (s *Session) Tabs() []models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tabs)
}

// SetSelected replaces the selection, as reported by a TabsSelected
// message.
func (s *Session) SetSelected(tabs []models.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = cloneOrEmpty(tabs)
}

func (s *Session) Selected() []models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.selected)
}

// ToggleSelected adds the tab with id to the selection, or removes it when
// it is already selected. Returns false when no current tab has id.
func (s *Session) ToggleSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab, ok := lo.Find(s.tabs, func(t models.Tab) bool { return t.ID == id })
	if !ok {
		return false
	}

	if idx := slices.IndexFunc(s.selected, func(t models.Tab) bool { return t.ID == id }); idx >= 0 {
		s.selected = slices.Delete(slices.Clone(s.selected), idx, idx+1)
		return true
	}
	s.selected = append(slices.Clone(s.selected), tab)
	return true
}

// IsSelected reports whether the tab with id is selected.
func (s *Session) IsSelected(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.selected, func(t models.Tab) bool { return t.ID == id })
}

func (s *Session) SetFolders(folders []models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = cloneOrEmpty(folders)
}

func (s *Session) Folders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.folders)
}

// Folder returns the cached folder with id.
func (s *Session) Folder(id string) (models.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.folders, func(f models.Folder) bool { return f.ID == id })
}

func (s *Session) SetSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Session) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
