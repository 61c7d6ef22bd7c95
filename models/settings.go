// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings are the user preferences driving copy output.
type Settings struct {
	IncludeTitles    bool
	IncludeURLs      bool
	UseMarkdown      bool
	SortByPosition   bool
	GroupByDomain    bool
	MarkdownTemplate string
	PlainTemplate    string
}

// DefaultSettings returns the preferences of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		IncludeTitles:    true,
		IncludeURLs:      true,
		UseMarkdown:      true,
		MarkdownTemplate: DefaultMarkdownTemplate,
		PlainTemplate:    DefaultPlainTemplate,
	}
}

// Kind returns the active output kind.
func (s Settings) Kind() OutputKind {
	if s.UseMarkdown {
		return Markdown
	}
	return PlainText
}

// Template returns the template for the active output kind.
func (s Settings) Template() string {
	if s.UseMarkdown {
		return s.MarkdownTemplate
	}
	return s.PlainTemplate
}
