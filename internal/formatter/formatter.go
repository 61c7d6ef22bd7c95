// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formatter renders tabs into text lines using user templates.
package formatter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// Position locates a tab in the rendered output. Both counters are 1-based.
type Position struct {
	Index       int
	DomainIndex int
}

var (
	multiSpace     = regexp.MustCompile(` {2,}`)
	trailingDash   = regexp.MustCompile(`\s+-\s*$`)
	leadingDash    = regexp.MustCompile(`^\s+-\s+`)
	placeholderSet = []string{
		models.PlaceholderTitle,
		models.PlaceholderURL,
		models.PlaceholderIndex,
		models.PlaceholderDomainIndex,
	}
)

// FormatTab substitutes the placeholders of template for tab.
//
// Title and URL are replaced by an empty string when not included; if
// neither is included the URL is kept so a line is never silently empty,
// and appended when template has no {{url}} placeholder.
// Artifacts left by omitted fields ("[]", "()", dangling " - " separators,
// repeated spaces) are cleaned up. A template without any recognized
// placeholder is returned as is.
func FormatTab(tab models.Tab, template string, includeTitle, includeURL bool, pos Position) string {
	if !hasPlaceholder(template) {
		return template
	}

	appendURL := false
	if !includeTitle && !includeURL {
		includeURL = true
		appendURL = !strings.Contains(template, models.PlaceholderURL)
	}

	title, url := "", ""
	if includeTitle {
		title = tab.Title
	}
	if includeURL {
		url = tab.URL
	}

	line := strings.NewReplacer(
		models.PlaceholderTitle, title,
		models.PlaceholderURL, url,
		models.PlaceholderIndex, strconv.Itoa(pos.Index),
		models.PlaceholderDomainIndex, strconv.Itoa(pos.DomainIndex),
	).Replace(template)

	line = cleanup(line)
	if appendURL && url != "" {
		if line == "" {
			return url
		}
		line += " " + url
	}
	return line
}

func hasPlaceholder(template string) bool {
	for _, p := range placeholderSet {
		if strings.Contains(template, p) {
			return true
		}
	}
	return false
}

func cleanup(line string) string {
	line = strings.ReplaceAll(line, "[]", "")
	line = strings.ReplaceAll(line, "()", "")
	line = trailingDash.ReplaceAllString(line, "")
	line = leadingDash.ReplaceAllString(line, "")
	line = multiSpace.ReplaceAllString(line, " ")
	return strings.TrimRight(line, " ")
}
