// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formatter

import (
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// ProcessOptions control ordering and grouping.
type ProcessOptions struct {
	SortByPosition bool
	GroupByDomain  bool
}

// Group is a run of tabs sharing a domain. Domain is empty when grouping
// is off.
type Group struct {
	Domain string
	Tabs   []models.Tab
}

// ProcessTabs orders tabs and optionally buckets them by hostname.
//
// The sort is stable on Tab.Index. Domains keep the order in which they were
// first seen. Without grouping a single group holding every tab is returned.
func ProcessTabs(tabs []models.Tab, opts ProcessOptions) []Group {
	ordered := slices.Clone(tabs)
	if ordered == nil {
		ordered = []models.Tab{}
	}
	if opts.SortByPosition {
		slices.SortStableFunc(ordered, func(a, b models.Tab) int {
			return a.Index - b.Index
		})
	}

	if !opts.GroupByDomain {
		return []Group{{Tabs: ordered}}
	}

	var groups []Group
	seen := make(map[string]int)
	for _, tab := range ordered {
		domain := DomainOf(tab.URL)
		i, ok := seen[domain]
		if !ok {
			i = len(groups)
			seen[domain] = i
			groups = append(groups, Group{Domain: domain})
		}
		groups[i].Tabs = append(groups[i].Tabs, tab)
	}
	return groups
}

// DomainOf returns the hostname of rawURL, or rawURL itself when it can not
// be parsed into something with a host.
func DomainOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}
