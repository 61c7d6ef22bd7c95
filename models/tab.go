// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tab is a browser tab as reported by the host environment.
type Tab struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	FavIconURL  string `json:"favIconUrl"`
	Index       int    `json:"index"`
	Highlighted bool   `json:"highlighted"`
}

// CompactTab is the minimal persisted representation of a tab. Field names
// are kept short because folders travel inside share links.
type CompactTab struct {
	Title      string `json:"t"`
	URL        string `json:"u"`
	FavIconURL string `json:"f"`
}

// NewCompactTab converts a host tab to its compact form.
func NewCompactTab(tab Tab) CompactTab {
	return CompactTab{
		Title:      tab.Title,
		URL:        tab.URL,
		FavIconURL: tab.FavIconURL,
	}
}

// CompactTabs converts a slice of host tabs. It never returns nil.
func CompactTabs(tabs []Tab) []CompactTab {
	out := make([]CompactTab, 0, len(tabs))
	for _, tab := range tabs {
		out = append(out, NewCompactTab(tab))
	}
	return out
}

// ToTab expands a compact tab back to a host tab placed at index.
func (c CompactTab) ToTab(index int) Tab {
	return Tab{
		Title:      c.Title,
		URL:        c.URL,
		FavIconURL: c.FavIconURL,
		Index:      index,
	}
}
