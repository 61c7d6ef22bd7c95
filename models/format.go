// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutputKind selects between markdown and plain text output.
type OutputKind string

const (
	Markdown  OutputKind = "markdown"
	PlainText OutputKind = "plain"
)

// ParseOutputKind maps user input to an [OutputKind].
func ParseOutputKind(s string) (OutputKind, bool) {
	switch s {
	case "markdown", "md":
		return Markdown, true
	case "plain", "text", "plaintext":
		return PlainText, true
	}
	return "", false
}

// Format is a named line template.
type Format struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	BuiltIn bool   `json:"-"`
}

// Placeholders understood by the formatter.
const (
	PlaceholderTitle       = "{{title}}"
	PlaceholderURL         = "{{url}}"
	PlaceholderIndex       = "{{@index}}"
	PlaceholderDomainIndex = "{{@domainIndex}}"
)

const (
	DefaultMarkdownTemplate = "- [{{title}}]({{url}})"
	DefaultPlainTemplate    = "{{title}} - {{url}}"
)

// BuiltInFormats returns the formats shipped for kind.
func BuiltInFormats(kind OutputKind) []Format {
	if kind == Markdown {
		return []Format{
			{ID: "md-list", Name: "Bullet list", Pattern: DefaultMarkdownTemplate, BuiltIn: true},
			{ID: "md-numbered", Name: "Numbered list", Pattern: "{{@index}}. [{{title}}]({{url}})", BuiltIn: true},
			{ID: "md-link", Name: "Link only", Pattern: "[{{title}}]({{url}})", BuiltIn: true},
			{ID: "md-task", Name: "Task list", Pattern: "- [ ] [{{title}}]({{url}})", BuiltIn: true},
		}
	}
	return []Format{
		{ID: "txt-title-url", Name: "Title - URL", Pattern: DefaultPlainTemplate, BuiltIn: true},
		{ID: "txt-url", Name: "URL only", Pattern: "{{url}}", BuiltIn: true},
		{ID: "txt-numbered", Name: "Numbered", Pattern: "{{@index}}. {{title}} {{url}}", BuiltIn: true},
	}
}
