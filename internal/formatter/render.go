// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formatter

import (
	"strings"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// RenderOptions is everything needed to turn tabs into clipboard text.
type RenderOptions struct {
	Template     string
	Kind         models.OutputKind
	IncludeTitle bool
	IncludeURL   bool
	ProcessOptions
}

// OptionsFromSettings builds render options from persisted settings.
func OptionsFromSettings(s models.Settings) RenderOptions {
	return RenderOptions{
		Template:     s.Template(),
		Kind:         s.Kind(),
		IncludeTitle: s.IncludeTitles,
		IncludeURL:   s.IncludeURLs,
		ProcessOptions: ProcessOptions{
			SortByPosition: s.SortByPosition,
			GroupByDomain:  s.GroupByDomain,
		},
	}
}

// Render formats tabs one per line. Grouped output starts every group with a
// header line ("## domain" for markdown) and separates groups by a blank
// line.
func Render(tabs []models.Tab, opts RenderOptions) string {
	groups := ProcessTabs(tabs, opts.ProcessOptions)

	var lines []string
	index := 0
	for gi, group := range groups {
		if opts.GroupByDomain {
			if gi > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, header(group.Domain, opts.Kind))
		}
		for di, tab := range group.Tabs {
			index++
			pos := Position{Index: index, DomainIndex: di + 1}
			lines = append(lines, FormatTab(tab, opts.Template, opts.IncludeTitle, opts.IncludeURL, pos))
		}
	}
	return strings.Join(lines, "\n")
}

func header(domain string, kind models.OutputKind) string {
	if kind == models.Markdown {
		return "## " + domain
	}
	return domain
}
