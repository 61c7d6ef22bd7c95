// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Folder is a named, user-created collection of saved tabs.
//
// ID and CreatedAt are assigned once at creation and never change. Tabs is
// appended to, filtered or replaced wholesale by the folder store.
type Folder struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt string       `json:"createdAt"`
	Tabs      []CompactTab `json:"tabs"`
}

// CreatedTime parses CreatedAt. A malformed timestamp yields the zero time.
func (f Folder) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, f.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HostTabs expands the folder tabs so they can be rendered by the formatter.
// The position inside the folder becomes the tab index.
func (f Folder) HostTabs() []Tab {
	out := make([]Tab, 0, len(f.Tabs))
	for i, tab := range f.Tabs {
		out = append(out, tab.ToTab(i))
	}
	return out
}

// FolderPatch describes a partial folder update. Nil/unset fields are left
// untouched; ID and CreatedAt can not be patched.
type FolderPatch struct {
	Name    *string
	Tabs    []CompactTab
	SetTabs bool
}

// RenamePatch builds a patch that only changes the folder name.
func RenamePatch(name string) FolderPatch {
	return FolderPatch{Name: &name}
}

// ReplaceTabsPatch builds a patch that replaces the folder tabs.
func ReplaceTabsPatch(tabs []CompactTab) FolderPatch {
	if tabs == nil {
		tabs = []CompactTab{}
	}
	return FolderPatch{Tabs: tabs, SetTabs: true}
}

// Apply shallow-merges the patch into f and returns the result.
func (p FolderPatch) Apply(f Folder) Folder {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.SetTabs {
		f.Tabs = p.Tabs
	}
	return f
}
