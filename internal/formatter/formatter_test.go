package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-tab-keeper/models"
)

var tabA = models.Tab{Title: "A", URL: "https://a.com"}

func TestFormatTab(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		includeTitle bool
		includeURL   bool
		pos          Position
		want         string
	}{
		{
			name:         "markdown link",
			template:     "- [{{title}}]({{url}})",
			includeTitle: true, includeURL: true,
			want: "- [A](https://a.com)",
		},
		{
			name:         "title only drops empty parens",
			template:     "- [{{title}}]({{url}})",
			includeTitle: true,
			want:         "- [A]",
		},
		{
			name:       "url only drops empty brackets",
			template:   "[{{title}}]({{url}})",
			includeURL: true,
			want:       "(https://a.com)",
		},
		{
			name:         "trailing separator removed",
			template:     "{{title}} - {{url}}",
			includeTitle: true,
			want:         "A",
		},
		{
			name:       "leading separator removed",
			template:   "{{title}} - {{url}}",
			includeURL: true,
			want:       "https://a.com",
		},
		{
			name:     "neither requested falls back to url",
			template: "{{title}} - {{url}}",
			want:     "https://a.com",
		},
		{
			name:         "indices",
			template:     "{{@index}}. {{title}} ({{@domainIndex}})",
			includeTitle: true, includeURL: true,
			pos:  Position{Index: 3, DomainIndex: 2},
			want: "3. A (2)",
		},
		{
			name:     "neither requested appends url missing from template",
			template: "{{@index}}. {{title}}",
			pos:      Position{Index: 1, DomainIndex: 1},
			want:     "1. https://a.com",
		},
		{
			name:     "neither requested with title only template",
			template: "{{title}}",
			want:     "https://a.com",
		},
		{
			name:         "multiple spaces collapsed",
			template:     "{{title}}   {{url}}",
			includeTitle: true, includeURL: true,
			want: "A https://a.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTab(tabA, tt.template, tt.includeTitle, tt.includeURL, tt.pos)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTab_NoPlaceholdersUnchanged(t *testing.T) {
	templates := []string{
		"",
		"just text",
		"  spaced   out  - ",
		"[]() {{unknown}}",
	}
	for _, tmpl := range templates {
		assert.Equal(t, tmpl, FormatTab(tabA, tmpl, true, true, Position{Index: 1, DomainIndex: 1}))
	}
}

func TestFormatTab_EmptyTitleKeepsLineUseful(t *testing.T) {
	tab := models.Tab{URL: "https://a.com"}
	assert.Equal(t, "https://a.com", FormatTab(tab, "{{title}} - {{url}}", true, true, Position{}))
}
